package compiler

import "testing"

func TestArenaEmplaceReturnsStablePointers(t *testing.T) {
	a := NewArena[IntLit]()
	var ptrs []*IntLit
	for i := 0; i < 200; i++ {
		p, err := a.Emplace(IntLit{Value: int64(i)})
		if err != nil {
			t.Fatalf("Emplace(%d) returned error: %v", i, err)
		}
		ptrs = append(ptrs, p)
	}
	// Growing into a new slab must never invalidate a pointer already
	// handed out; every one of them must still read back its own value.
	for i, p := range ptrs {
		if p.Value != int64(i) {
			t.Errorf("ptrs[%d].Value = %d, want %d", i, p.Value, i)
		}
	}
}

func TestBoundedArenaExhaustion(t *testing.T) {
	a := NewBoundedArena[IntLit](2)
	if _, err := a.Emplace(IntLit{Value: 1}); err != nil {
		t.Fatalf("first Emplace returned error: %v", err)
	}
	if _, err := a.Emplace(IntLit{Value: 2}); err != nil {
		t.Fatalf("second Emplace returned error: %v", err)
	}
	_, err := a.Emplace(IntLit{Value: 3})
	if err == nil {
		t.Fatal("expected an error once the bounded arena is exhausted")
	}
	if _, ok := err.(*InternalError); !ok {
		t.Fatalf("error = %v (%T), want *InternalError", err, err)
	}
}
