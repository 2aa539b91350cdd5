package compiler

import (
	"fmt"
	"strings"
)

// Variable is a named binding's position in the flat, declaration-ordered
// variable region of the runtime stack (see CodeGen's memory model).
type Variable struct {
	Name  string
	Index int // slot index within the variable region; slot i lives at sp+8*i
}

// SymbolTable tracks every variable currently live, across all open scopes,
// as a single flat list in declaration order. This is deliberately not a
// stack of per-scope maps: lookups and the redeclaration check both scan
// the whole live list, which is what gives `let` its global-uniqueness rule
// — a name is taken while any open scope still holds it. EndScope drops a
// closed scope's bindings from this list, after which their names and slots
// are free to be declared again.
type SymbolTable struct {
	vars []Variable
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// VarCount returns the current size of the variable region.
func (s *SymbolTable) VarCount() int {
	return len(s.vars)
}

// Declare binds a new name at the next free slot. It fails if name is
// already live in any currently open scope.
func (s *SymbolTable) Declare(name string, line int) (Variable, error) {
	for _, v := range s.vars {
		if v.Name == name {
			return Variable{}, &RedeclaredIdentifierError{Name: name, Line: line}
		}
	}
	v := Variable{Name: name, Index: len(s.vars)}
	s.vars = append(s.vars, v)
	return v, nil
}

// Lookup finds a live variable by name.
func (s *SymbolTable) Lookup(name string) (Variable, bool) {
	for i := len(s.vars) - 1; i >= 0; i-- {
		if s.vars[i].Name == name {
			return s.vars[i], true
		}
	}
	return Variable{}, false
}

// BeginScope returns a mark that EndScope later rewinds to.
func (s *SymbolTable) BeginScope() int {
	return len(s.vars)
}

// EndScope drops every variable declared since mark and returns how many
// slots were freed, i.e. the pop count the generator must account for.
func (s *SymbolTable) EndScope(mark int) int {
	popCount := len(s.vars) - mark
	s.vars = s.vars[:mark]
	return popCount
}

// String returns a deterministic dump of the currently live variables, in
// declaration order, for debugging.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	if len(s.vars) == 0 {
		return "Variables: (empty)\n"
	}
	sb.WriteString("Variables:\n")
	for _, v := range s.vars {
		fmt.Fprintf(&sb, "  %-20s  slot %d\n", v.Name, v.Index)
	}
	return sb.String()
}
