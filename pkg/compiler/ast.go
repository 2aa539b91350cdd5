package compiler

import "fmt"

//  Expression nodes

// Expr is implemented by every node that produces a value. genExpr always
// leaves the result on top of the expression region of the runtime stack.
type Expr interface {
	exprNode()
	String() string
}

// IntLit is a compile-time integer constant.
//
//	exit(10);
//	     ^^  IntLit{Value: 10}
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode()        {}
func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

// Ident is a read of a named variable.
//
//	exit(x);
//	     ^  Ident{Name: "x"}
type Ident struct {
	Name string
	Line int
}

func (*Ident) exprNode()        {}
func (v *Ident) String() string { return v.Name }

// Paren is a parenthesized sub-expression, kept as its own node so the AST
// keeps the exact source shape. The generator emits nothing for the
// parentheses themselves: (x) and x produce the same assembly.
//
//	(x + 1)
//	^     ^  Paren{Inner: BinExpr{...}}
type Paren struct {
	Inner Expr
}

func (*Paren) exprNode()        {}
func (p *Paren) String() string { return fmt.Sprintf("(%s)", p.Inner) }

// BinExpr is an arithmetic binary operation: Left Op Right, one of + - * /.
//
//	x + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
type BinExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinExpr) exprNode() {}
func (b *BinExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// CondExpr is a relational comparison: Left Op Right, one of > >= < <= == !=.
// It is a distinct node from BinExpr because it always yields 0 or 1 rather
// than an arithmetic result.
type CondExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*CondExpr) exprNode() {}
func (c *CondExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right)
}

//  Statement nodes

// Stmt is implemented by every node that does not itself produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// ExitStmt represents exit(expr); the value of expr becomes the process
// exit code.
type ExitStmt struct {
	Expr Expr
	Line int
}

func (*ExitStmt) stmtNode() {}
func (e *ExitStmt) String() string {
	return fmt.Sprintf("ExitStmt(%s)", e.Expr)
}

// LetStmt represents  let name = expr;  It declares a new variable in the
// current scope; declaring a name already live in any enclosing scope is
// a RedeclaredIdentifierError, not shadowing.
type LetStmt struct {
	Name string
	Init Expr
	Line int
}

func (*LetStmt) stmtNode() {}
func (l *LetStmt) String() string {
	return fmt.Sprintf("LetStmt(%s = %s)", l.Name, l.Init)
}

// AssignStmt represents  name = expr;  over an already-bound variable.
type AssignStmt struct {
	Name string
	Expr Expr
	Line int
}

func (*AssignStmt) stmtNode() {}
func (a *AssignStmt) String() string {
	return fmt.Sprintf("AssignStmt(%s = %s)", a.Name, a.Expr)
}

// UnaryReassign represents  name++;  or  name--;
type UnaryReassign struct {
	Name string
	Op   TokenType // PLUS_PLUS or MINUS_MINUS
	Line int
}

func (*UnaryReassign) stmtNode() {}
func (u *UnaryReassign) String() string {
	return fmt.Sprintf("UnaryReassign(%s%s)", u.Name, u.Op)
}

// CompoundReassign represents  name += term;  (also -=, *=, /=). The
// right-hand side is restricted to a single Term by the grammar, never a
// full expression.
type CompoundReassign struct {
	Name string
	Op   TokenType // PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN
	RHS  Expr
	Line int
}

func (*CompoundReassign) stmtNode() {}
func (c *CompoundReassign) String() string {
	return fmt.Sprintf("CompoundReassign(%s %s %s)", c.Name, c.Op, c.RHS)
}

// ScopeStmt represents { stmt... }. Entering one opens a new lexical scope;
// leaving it drops every variable declared directly inside.
type ScopeStmt struct {
	Stmts []Stmt
}

func (*ScopeStmt) stmtNode() {}
func (s *ScopeStmt) String() string {
	return fmt.Sprintf("ScopeStmt(len=%d)", len(s.Stmts))
}

// ElifClause is one `elif (cond) { body }` link in an if-statement's chain.
type ElifClause struct {
	Cond Expr
	Body *ScopeStmt
}

// IfStmt represents if (cond) { body } followed by zero or more elif
// clauses and an optional trailing else, in that order — a linear chain,
// never a tree, and only the last link may be an Else.
type IfStmt struct {
	Cond  Expr
	Body  *ScopeStmt
	Elifs []ElifClause
	Else  *ScopeStmt // nil when the statement has no trailing else
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	return fmt.Sprintf("IfStmt(%s, elifs=%d, else=%v)", i.Cond, len(i.Elifs), i.Else != nil)
}

// WhileStmt represents while (cond) { body }.
type WhileStmt struct {
	Cond Expr
	Body *ScopeStmt
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(%s)", w.Cond)
}

// Program is the root of a parsed source file: an ordered top-level
// statement list.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(len=%d)", len(p.Stmts))
}
