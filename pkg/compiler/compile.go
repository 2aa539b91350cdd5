package compiler

import "fmt"

// Arch selects which Backend Compile targets.
type Arch int

const (
	AMD64 Arch = iota
	ARM64
)

// Backend returns the concrete Backend implementation for a.
func (a Arch) Backend() (Backend, error) {
	switch a {
	case AMD64:
		return AMD64Backend{}, nil
	case ARM64:
		return ARM64Backend{}, nil
	default:
		return nil, fmt.Errorf("unknown architecture %d", int(a))
	}
}

// Compile runs the full pipeline — lex, parse, generate — over src and
// returns the assembly text for arch. The first stage to fail aborts the
// rest. Lexing, parsing and generation fail with one of the typed errors in
// errors.go; an unknown arch fails with the plain error from Arch.Backend.
func Compile(src string, arch Arch) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}

	prog, err := Parse(tokens, src)
	if err != nil {
		return "", err
	}

	backend, err := arch.Backend()
	if err != nil {
		return "", err
	}

	asm, err := Generate(prog, backend)
	if err != nil {
		return "", err
	}
	return asm, nil
}
