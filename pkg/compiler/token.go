package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable name
	INTEGER    // decimal integer literal

	// Keywords
	EXIT  // "exit"
	LET   // "let"
	IF    // "if"
	ELIF  // "elif"
	ELSE  // "else"
	WHILE // "while"

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	PLUS_PLUS   // ++
	MINUS_MINUS // --

	// Assignment / comparison
	ASSIGN       // =
	PLUS_ASSIGN  // +=
	MINUS_ASSIGN // -=
	STAR_ASSIGN  // *=
	SLASH_ASSIGN // /=

	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType. Nothing checks that it covers every
// kind; String falls back to "TokenType(n)" for an index past its end.
var tokenNames = [...]string{
	EOF:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	INTEGER:      "INTEGER",
	EXIT:         "EXIT",
	LET:          "LET",
	IF:           "IF",
	ELIF:         "ELIF",
	ELSE:         "ELSE",
	WHILE:        "WHILE",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	SEMICOLON:    "SEMICOLON",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PLUS_PLUS:    "PLUS_PLUS",
	MINUS_MINUS:  "MINUS_MINUS",
	ASSIGN:       "ASSIGN",
	PLUS_ASSIGN:  "PLUS_ASSIGN",
	MINUS_ASSIGN: "MINUS_ASSIGN",
	STAR_ASSIGN:  "STAR_ASSIGN",
	SLASH_ASSIGN: "SLASH_ASSIGN",
	EQUALS:       "EQUALS",
	NOT_EQ:       "NOT_EQ",
	LESS:         "LESS",
	GREATER:      "GREATER",
	LESS_EQ:      "LESS_EQ",
	GREATER_EQ:   "GREATER_EQ",
}

// humanNames gives the word a parse error should name when a token of this
// type was expected but not found, e.g. "';'" rather than "SEMICOLON".
var humanNames = [...]string{
	EOF:          "end of input",
	IDENTIFIER:   "identifier",
	INTEGER:      "integer literal",
	EXIT:         "'exit'",
	LET:          "'let'",
	IF:           "'if'",
	ELIF:         "'elif'",
	ELSE:         "'else'",
	WHILE:        "'while'",
	LBRACE:       "'{'",
	RBRACE:       "'}'",
	LPAREN:       "'('",
	RPAREN:       "')'",
	SEMICOLON:    "';'",
	PLUS:         "'+'",
	MINUS:        "'-'",
	STAR:         "'*'",
	SLASH:        "'/'",
	PLUS_PLUS:    "'++'",
	MINUS_MINUS:  "'--'",
	ASSIGN:       "'='",
	PLUS_ASSIGN:  "'+='",
	MINUS_ASSIGN: "'-='",
	STAR_ASSIGN:  "'*='",
	SLASH_ASSIGN: "'/='",
	EQUALS:       "'=='",
	NOT_EQ:       "'!='",
	LESS:         "'<'",
	GREATER:      "'>'",
	LESS_EQ:      "'<='",
	GREATER_EQ:   "'>='",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Human returns the word used in parser diagnostics for this token kind.
func (tt TokenType) Human() string {
	if int(tt) >= 0 && int(tt) < len(humanNames) && humanNames[tt] != "" {
		return humanNames[tt]
	}
	return tt.String()
}

var keywords = map[string]TokenType{
	"exit":  EXIT,
	"let":   LET,
	"if":    IF,
	"elif":  ELIF,
	"else":  ELSE,
	"while": WHILE,
}

// binPrec returns the binary operator precedence of tt and true if tt is a
// binary operator usable inside an expression. Higher binds tighter.
func binPrec(tt TokenType) (int, bool) {
	switch tt {
	case GREATER, GREATER_EQ, LESS, LESS_EQ, EQUALS, NOT_EQ:
		return 0, true
	case PLUS, MINUS:
		return 1, true
	case STAR, SLASH:
		return 2, true
	default:
		return 0, false
	}
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
