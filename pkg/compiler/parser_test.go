package compiler

import "testing"

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", src, err)
	}
	return tokens
}

func TestParsePrecedenceClimbing(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	tokens := mustLex(t, "exit(1 + 2 * 3);")
	prog, err := Parse(tokens, "exit(1 + 2 * 3);")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("len(prog.Stmts) = %d, want 1", len(prog.Stmts))
	}
	exitStmt, ok := prog.Stmts[0].(*ExitStmt)
	if !ok {
		t.Fatalf("prog.Stmts[0] = %T, want *ExitStmt", prog.Stmts[0])
	}
	bin, ok := exitStmt.Expr.(*BinExpr)
	if !ok {
		t.Fatalf("exitStmt.Expr = %T, want *BinExpr", exitStmt.Expr)
	}
	if bin.Op != PLUS {
		t.Fatalf("top-level op = %s, want PLUS", bin.Op)
	}
	if _, ok := bin.Left.(*IntLit); !ok {
		t.Errorf("bin.Left = %T, want *IntLit", bin.Left)
	}
	rhs, ok := bin.Right.(*BinExpr)
	if !ok {
		t.Fatalf("bin.Right = %T, want *BinExpr", bin.Right)
	}
	if rhs.Op != STAR {
		t.Errorf("bin.Right.Op = %s, want STAR", rhs.Op)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2 must bind as (10 - 3) - 2, not 10 - (3 - 2).
	src := "exit(10 - 3 - 2);"
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	exitStmt := prog.Stmts[0].(*ExitStmt)
	top, ok := exitStmt.Expr.(*BinExpr)
	if !ok {
		t.Fatalf("exitStmt.Expr = %T, want *BinExpr", exitStmt.Expr)
	}
	if _, ok := top.Right.(*IntLit); !ok {
		t.Errorf("top.Right = %T, want *IntLit (the final '2')", top.Right)
	}
	left, ok := top.Left.(*BinExpr)
	if !ok {
		t.Fatalf("top.Left = %T, want *BinExpr", top.Left)
	}
	if _, ok := left.Left.(*IntLit); !ok {
		t.Errorf("left.Left = %T, want *IntLit", left.Left)
	}
}

func TestParseCondExprIsDistinctFromBinExpr(t *testing.T) {
	src := "exit(1 < 2 + 3);"
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	exitStmt := prog.Stmts[0].(*ExitStmt)
	cond, ok := exitStmt.Expr.(*CondExpr)
	if !ok {
		t.Fatalf("exitStmt.Expr = %T, want *CondExpr", exitStmt.Expr)
	}
	if cond.Op != LESS {
		t.Errorf("cond.Op = %s, want LESS", cond.Op)
	}
	if _, ok := cond.Right.(*BinExpr); !ok {
		t.Errorf("cond.Right = %T, want *BinExpr (2 + 3 binds tighter than <)", cond.Right)
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := `if (x > 0) { exit(1); } elif (x < 0) { exit(2); } elif (x == 0) { exit(3); } else { exit(4); }`
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ifStmt, ok := prog.Stmts[0].(*IfStmt)
	if !ok {
		t.Fatalf("prog.Stmts[0] = %T, want *IfStmt", prog.Stmts[0])
	}
	if len(ifStmt.Elifs) != 2 {
		t.Fatalf("len(Elifs) = %d, want 2", len(ifStmt.Elifs))
	}
	if ifStmt.Else == nil {
		t.Fatal("Else = nil, want a trailing else block")
	}
	if len(ifStmt.Else.Stmts) != 1 {
		t.Errorf("len(Else.Stmts) = %d, want 1", len(ifStmt.Else.Stmts))
	}
}

func TestParseWhileLoop(t *testing.T) {
	src := `while (x != 0) { x -= 1; }`
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	whileStmt, ok := prog.Stmts[0].(*WhileStmt)
	if !ok {
		t.Fatalf("prog.Stmts[0] = %T, want *WhileStmt", prog.Stmts[0])
	}
	if len(whileStmt.Body.Stmts) != 1 {
		t.Fatalf("len(Body.Stmts) = %d, want 1", len(whileStmt.Body.Stmts))
	}
	compound, ok := whileStmt.Body.Stmts[0].(*CompoundReassign)
	if !ok {
		t.Fatalf("Body.Stmts[0] = %T, want *CompoundReassign", whileStmt.Body.Stmts[0])
	}
	if compound.Op != MINUS_ASSIGN {
		t.Errorf("compound.Op = %s, want MINUS_ASSIGN", compound.Op)
	}
}

func TestParseUnaryReassign(t *testing.T) {
	src := "x++;"
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	u, ok := prog.Stmts[0].(*UnaryReassign)
	if !ok {
		t.Fatalf("prog.Stmts[0] = %T, want *UnaryReassign", prog.Stmts[0])
	}
	if u.Op != PLUS_PLUS || u.Name != "x" {
		t.Errorf("got UnaryReassign{%s, %s}, want {x, PLUS_PLUS}", u.Name, u.Op)
	}
}

func TestParseLetAndAssign(t *testing.T) {
	src := "let x = 5; x = x + 1;"
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("len(prog.Stmts) = %d, want 2", len(prog.Stmts))
	}
	let, ok := prog.Stmts[0].(*LetStmt)
	if !ok || let.Name != "x" {
		t.Fatalf("prog.Stmts[0] = %v, want LetStmt(x = ...)", prog.Stmts[0])
	}
	assign, ok := prog.Stmts[1].(*AssignStmt)
	if !ok || assign.Name != "x" {
		t.Fatalf("prog.Stmts[1] = %v, want AssignStmt(x = ...)", prog.Stmts[1])
	}
}

func TestParseMissingSemicolonIsParseError(t *testing.T) {
	src := "let x = 5"
	_, err := Parse(mustLex(t, src), src)
	if err == nil {
		t.Fatal("expected a ParseError for the missing ';', got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
	if pe.What != "';'" {
		t.Errorf("pe.What = %q, want %q", pe.What, "';'")
	}
}

func TestParseUnexpectedTokenAtStatementStart(t *testing.T) {
	src := "+ 1;"
	_, err := Parse(mustLex(t, src), src)
	if err == nil {
		t.Fatal("expected a ParseError, got nil")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
}

func TestParseNestedScopes(t *testing.T) {
	src := "{ let x = 1; { let y = 2; } }"
	prog, err := Parse(mustLex(t, src), src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	outer, ok := prog.Stmts[0].(*ScopeStmt)
	if !ok {
		t.Fatalf("prog.Stmts[0] = %T, want *ScopeStmt", prog.Stmts[0])
	}
	if len(outer.Stmts) != 2 {
		t.Fatalf("len(outer.Stmts) = %d, want 2", len(outer.Stmts))
	}
	if _, ok := outer.Stmts[1].(*ScopeStmt); !ok {
		t.Fatalf("outer.Stmts[1] = %T, want *ScopeStmt", outer.Stmts[1])
	}
}
