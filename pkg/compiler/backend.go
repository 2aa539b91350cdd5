package compiler

// Backend emits the architecture-specific instruction text for one logical
// code generation operation. CodeGen drives a Backend without ever
// special-casing an architecture itself; the two-region stack bookkeeping
// (var_count, expr_depth) lives on CodeGen and is shared by both
// implementations, so a Backend only ever needs to say how to move a value
// between a register and a stack slot, or how to branch, on its target.
type Backend interface {
	// CommentPrefix returns the line-comment token this target's
	// assembler recognizes, e.g. "; " or "// ".
	CommentPrefix() string

	// EmitPrologue opens the output with whatever header and stack-frame
	// setup the target needs before the first statement runs.
	EmitPrologue(cg *CodeGen)

	// EmitEpilogue closes the program with a fallback exit(0), used when
	// control falls off the end without an explicit exit() call.
	EmitEpilogue(cg *CodeGen)

	// EmitMoveImm pushes the constant value onto the expression region.
	EmitMoveImm(cg *CodeGen, value int64)

	// EmitLoadSlot pushes the value of variable-region slot index onto the
	// expression region.
	EmitLoadSlot(cg *CodeGen, index int)

	// EmitStoreSlot pops the expression region's top value into
	// variable-region slot index.
	EmitStoreSlot(cg *CodeGen, index int)

	// EmitBinOp pops two values (top = left, below = right), computes
	// left OP right, and pushes the result. op is one of + - * /.
	EmitBinOp(cg *CodeGen, op TokenType)

	// EmitCmpSet pops two values (top = left, below = right), compares them
	// with op (one of > >= < <= == !=), and pushes 1 or 0.
	EmitCmpSet(cg *CodeGen, op TokenType)

	// EmitBranchIfZero pops the top value and jumps to label if it is zero.
	EmitBranchIfZero(cg *CodeGen, label string)

	// EmitJump emits an unconditional jump to label.
	EmitJump(cg *CodeGen, label string)

	// EmitLabel places label at the current position.
	EmitLabel(cg *CodeGen, label string)

	// EmitExit pops the top value and terminates the process with it as
	// the exit code.
	EmitExit(cg *CodeGen)
}
