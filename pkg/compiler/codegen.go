package compiler

import (
	"fmt"
	"strings"
)

// frameBytes is the fixed stack frame every prologue reserves up front.
// Because end_scope never moves the stack pointer (see CodeGen's memory
// model), the whole program's variable and expression regions must fit
// inside one pre-sized frame of 512 eight-byte slots. The generator does not
// check that a program's variables and temporaries stay within it.
const frameBytes = 512 * 8

// StackEvent records one observable change to the two-region runtime stack
// model, for consumption by the stack visualizer. It has no effect on the
// emitted assembly; CodeGen.Trace stays nil unless tracing is requested.
type StackEvent struct {
	Kind  string // "push", "pop", "let", "scope_begin", "scope_end"
	Name  string // variable name, set for "let"
	Index int    // slot index for "let"/"push"/"pop"; pop count for "scope_end"
}

// CodeGen walks a Program's AST and emits assembly text through a Backend.
// It owns the symbol table, the expression-region depth counter, the label
// counter, and (optionally) a trace of stack events.
type CodeGen struct {
	backend Backend
	syms    *SymbolTable
	out     strings.Builder

	exprDepth int
	labelN    int

	tracing bool
	Trace   []StackEvent
}

func newCodeGen(backend Backend, tracing bool) *CodeGen {
	return &CodeGen{
		backend: backend,
		syms:    NewSymbolTable(),
		tracing: tracing,
	}
}

// line appends one line of assembly text, terminated by a newline.
func (cg *CodeGen) line(format string, args ...any) {
	fmt.Fprintf(&cg.out, format, args...)
	cg.out.WriteByte('\n')
}

// comment appends a backend-commented line, useful for making the emitted
// assembly readable without affecting its semantics.
func (cg *CodeGen) comment(format string, args ...any) {
	cg.line(cg.backend.CommentPrefix()+format, args...)
}

// newLabel returns a fresh, program-unique label name.
func (cg *CodeGen) newLabel() string {
	cg.labelN++
	return fmt.Sprintf("label%d", cg.labelN)
}

// pushOffset reserves the next expression-region slot and returns its byte
// offset from the stack pointer.
func (cg *CodeGen) pushOffset() int {
	off := 8 * (cg.syms.VarCount() + cg.exprDepth)
	cg.exprDepth++
	if cg.tracing {
		cg.Trace = append(cg.Trace, StackEvent{Kind: "push", Index: off / 8})
	}
	return off
}

// popOffset releases the top expression-region slot and returns its byte
// offset from the stack pointer.
func (cg *CodeGen) popOffset() int {
	cg.exprDepth--
	off := 8 * (cg.syms.VarCount() + cg.exprDepth)
	if cg.tracing {
		cg.Trace = append(cg.Trace, StackEvent{Kind: "pop", Index: off / 8})
	}
	return off
}

// slotOffset returns the byte offset of variable-region slot index.
func (cg *CodeGen) slotOffset(index int) int {
	return 8 * index
}

func baseArithOp(op TokenType) TokenType {
	switch op {
	case PLUS_ASSIGN:
		return PLUS
	case MINUS_ASSIGN:
		return MINUS
	case STAR_ASSIGN:
		return STAR
	case SLASH_ASSIGN:
		return SLASH
	default:
		return op
	}
}

// genExpr emits code that leaves e's value on top of the expression region.
func (cg *CodeGen) genExpr(e Expr) error {
	switch n := e.(type) {
	case *IntLit:
		cg.backend.EmitMoveImm(cg, n.Value)
		return nil

	case *Ident:
		v, ok := cg.syms.Lookup(n.Name)
		if !ok {
			return &UndeclaredIdentifierError{Name: n.Name, Line: n.Line}
		}
		cg.backend.EmitLoadSlot(cg, v.Index)
		return nil

	case *Paren:
		return cg.genExpr(n.Inner)

	case *BinExpr:
		if err := cg.genExpr(n.Right); err != nil {
			return err
		}
		if err := cg.genExpr(n.Left); err != nil {
			return err
		}
		cg.backend.EmitBinOp(cg, n.Op)
		return nil

	case *CondExpr:
		if err := cg.genExpr(n.Right); err != nil {
			return err
		}
		if err := cg.genExpr(n.Left); err != nil {
			return err
		}
		cg.backend.EmitCmpSet(cg, n.Op)
		return nil

	default:
		return &InternalError{Reason: fmt.Sprintf("unknown expression node %T", e)}
	}
}

// genScope emits a lexical scope: its statements, then drops every
// variable it declared. No instruction is emitted for the drop itself —
// the frame is pre-sized by the prologue, so a closed scope's slots simply
// become free to reuse on both backends.
func (cg *CodeGen) genScope(s *ScopeStmt) error {
	mark := cg.syms.BeginScope()
	if cg.tracing {
		cg.Trace = append(cg.Trace, StackEvent{Kind: "scope_begin", Index: mark})
	}
	for _, stmt := range s.Stmts {
		if err := cg.genStmt(stmt); err != nil {
			return err
		}
	}
	popCount := cg.syms.EndScope(mark)
	if cg.tracing {
		cg.Trace = append(cg.Trace, StackEvent{Kind: "scope_end", Index: popCount})
	}
	return nil
}

func (cg *CodeGen) genIf(n *IfStmt) error {
	falseLabel := cg.newLabel()
	if err := cg.genExpr(n.Cond); err != nil {
		return err
	}
	cg.backend.EmitBranchIfZero(cg, falseLabel)
	if err := cg.genScope(n.Body); err != nil {
		return err
	}

	if len(n.Elifs) == 0 && n.Else == nil {
		cg.backend.EmitLabel(cg, falseLabel)
		return nil
	}

	endLabel := cg.newLabel()
	cg.backend.EmitJump(cg, endLabel)
	cg.backend.EmitLabel(cg, falseLabel)

	for _, clause := range n.Elifs {
		nextLabel := cg.newLabel()
		if err := cg.genExpr(clause.Cond); err != nil {
			return err
		}
		cg.backend.EmitBranchIfZero(cg, nextLabel)
		if err := cg.genScope(clause.Body); err != nil {
			return err
		}
		cg.backend.EmitJump(cg, endLabel)
		cg.backend.EmitLabel(cg, nextLabel)
	}

	if n.Else != nil {
		if err := cg.genScope(n.Else); err != nil {
			return err
		}
	}
	cg.backend.EmitLabel(cg, endLabel)
	return nil
}

func (cg *CodeGen) genWhile(n *WhileStmt) error {
	startLabel := cg.newLabel()
	endLabel := cg.newLabel()
	cg.backend.EmitLabel(cg, startLabel)
	if err := cg.genExpr(n.Cond); err != nil {
		return err
	}
	cg.backend.EmitBranchIfZero(cg, endLabel)
	if err := cg.genScope(n.Body); err != nil {
		return err
	}
	cg.backend.EmitJump(cg, startLabel)
	cg.backend.EmitLabel(cg, endLabel)
	return nil
}

// genStmt dispatches on the concrete statement type.
func (cg *CodeGen) genStmt(s Stmt) error {
	switch n := s.(type) {
	case *ExitStmt:
		if err := cg.genExpr(n.Expr); err != nil {
			return err
		}
		cg.backend.EmitExit(cg)
		return nil

	case *LetStmt:
		if _, exists := cg.syms.Lookup(n.Name); exists {
			return &RedeclaredIdentifierError{Name: n.Name, Line: n.Line}
		}
		// Generate the initializer while the variable region still has
		// its old size, then declare the binding and store into the slot
		// that size reserves for it. Declaring first would shift every
		// address the initializer computes by one slot.
		if err := cg.genExpr(n.Init); err != nil {
			return err
		}
		index := cg.syms.VarCount()
		cg.backend.EmitStoreSlot(cg, index)
		v, err := cg.syms.Declare(n.Name, n.Line)
		if err != nil {
			return err
		}
		if cg.tracing {
			cg.Trace = append(cg.Trace, StackEvent{Kind: "let", Name: n.Name, Index: v.Index})
		}
		return nil

	case *AssignStmt:
		v, ok := cg.syms.Lookup(n.Name)
		if !ok {
			return &UndeclaredIdentifierError{Name: n.Name, Line: n.Line}
		}
		if err := cg.genExpr(n.Expr); err != nil {
			return err
		}
		cg.backend.EmitStoreSlot(cg, v.Index)
		return nil

	case *UnaryReassign:
		v, ok := cg.syms.Lookup(n.Name)
		if !ok {
			return &UndeclaredIdentifierError{Name: n.Name, Line: n.Line}
		}
		op := PLUS
		if n.Op == MINUS_MINUS {
			op = MINUS
		}
		cg.backend.EmitMoveImm(cg, 1)
		cg.backend.EmitLoadSlot(cg, v.Index)
		cg.backend.EmitBinOp(cg, op)
		cg.backend.EmitStoreSlot(cg, v.Index)
		return nil

	case *CompoundReassign:
		v, ok := cg.syms.Lookup(n.Name)
		if !ok {
			return &UndeclaredIdentifierError{Name: n.Name, Line: n.Line}
		}
		if err := cg.genExpr(n.RHS); err != nil {
			return err
		}
		cg.backend.EmitLoadSlot(cg, v.Index)
		cg.backend.EmitBinOp(cg, baseArithOp(n.Op))
		cg.backend.EmitStoreSlot(cg, v.Index)
		return nil

	case *ScopeStmt:
		return cg.genScope(n)

	case *IfStmt:
		return cg.genIf(n)

	case *WhileStmt:
		return cg.genWhile(n)

	default:
		return &InternalError{Reason: fmt.Sprintf("unknown statement node %T", s)}
	}
}

func (cg *CodeGen) generate(prog *Program) error {
	cg.backend.EmitPrologue(cg)
	for _, stmt := range prog.Stmts {
		if err := cg.genStmt(stmt); err != nil {
			return err
		}
	}
	cg.backend.EmitEpilogue(cg)
	return nil
}

// Generate produces the assembly text for prog on the given backend.
func Generate(prog *Program, backend Backend) (string, error) {
	cg := newCodeGen(backend, false)
	if err := cg.generate(prog); err != nil {
		return "", err
	}
	return cg.out.String(), nil
}

// GenerateTraced behaves like Generate but also returns the sequence of
// stack events recorded during generation, for the stack visualizer.
func GenerateTraced(prog *Program, backend Backend) (string, []StackEvent, error) {
	cg := newCodeGen(backend, true)
	if err := cg.generate(prog); err != nil {
		return "", nil, err
	}
	return cg.out.String(), cg.Trace, nil
}
