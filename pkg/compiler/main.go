// Package compiler provides a single-pass lexer, parser, and code
// generator for a small imperative toy language, targeting either a
// SysV-like x86_64 or a Darwin-like arm64 native assembly backend.
//
// Pipeline: source → Lex → Parse → Generate → assembly text
package compiler
