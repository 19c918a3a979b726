// Package syntax implements lexical analysis for the stack machine source language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Special tokens
	EOF     Kind = iota // end of input
	Invalid             // unrecognized character or malformed lexeme

	// Literals
	Name      // identifier: a, total, x1
	IntLit    // 42
	FloatLit  // 3.14, 1e10
	StringLit // "hello"

	// Operators
	Assign // =
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Rem    // %
	Pow    // **
	OrOr   // ||
	AndAnd // &&
	Not    // !
	Lss    // <
	Leq    // <=
	Gtr    // >
	Geq    // >=
	Eql    // ==
	Neq    // !=

	// Delimiters
	Comma  // ,
	Semi   // ;
	Lparen // (
	Rparen // )
	Lbrace // {
	Rbrace // }
	Lbrack // [
	Rbrack // ]

	// Keywords
	Void
	Main
	Int
	Float
	Boolean
	True
	False
	If
	Else
	While
	Do
	Print
	Println
	Read

	kindCount
)

// kindNames maps kinds to the names used in diagnostics.
var kindNames = [...]string{
	EOF:     "end-of-input",
	Invalid: "invalid",

	Name:      "id",
	IntLit:    "int-number",
	FloatLit:  "float-number",
	StringLit: "string",

	Assign: "assignment",
	Add:    "add",
	Sub:    "subtract",
	Mul:    "multiply",
	Div:    "divide",
	Rem:    "modulus",
	Pow:    "power",
	OrOr:   "or",
	AndAnd: "and",
	Not:    "not",
	Lss:    "less-than",
	Leq:    "less-or-equal",
	Gtr:    "greater-than",
	Geq:    "greater-or-equal",
	Eql:    "equal",
	Neq:    "not-equal",

	Comma:  "comma",
	Semi:   "semicolon",
	Lparen: "open-parenthesis",
	Rparen: "closed-parenthesis",
	Lbrace: "open-curly-bracket",
	Rbrace: "closed-curly-bracket",
	Lbrack: "open-square-bracket",
	Rbrack: "closed-square-bracket",

	Void:    "void",
	Main:    "main",
	Int:     "int",
	Float:   "float",
	Boolean: "boolean",
	True:    "true",
	False:   "false",
	If:      "if",
	Else:    "else",
	While:   "while",
	Do:      "do",
	Print:   "print",
	Println: "println",
	Read:    "read",
}

// kindText is the canonical source spelling of every kind that has one.
// Kinds whose lexeme varies (names, literals) have no entry.
var kindText = [...]string{
	Assign: "=",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Rem:    "%",
	Pow:    "**",
	OrOr:   "||",
	AndAnd: "&&",
	Not:    "!",
	Lss:    "<",
	Leq:    "<=",
	Gtr:    ">",
	Geq:    ">=",
	Eql:    "==",
	Neq:    "!=",

	Comma:  ",",
	Semi:   ";",
	Lparen: "(",
	Rparen: ")",
	Lbrace: "{",
	Rbrace: "}",
	Lbrack: "[",
	Rbrack: "]",

	Void:    "void",
	Main:    "main",
	Int:     "int",
	Float:   "float",
	Boolean: "boolean",
	True:    "true",
	False:   "false",
	If:      "if",
	Else:    "else",
	While:   "while",
	Do:      "do",
	Print:   "print",
	Println: "println",
	Read:    "read",
}

// String returns the diagnostic name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// OperatorText returns the canonical source text of k.
// The boolean is false when k has no fixed spelling (EOF, Invalid, names
// and literals) or is out of range.
func OperatorText(k Kind) (string, bool) {
	if k >= kindCount || kindText[k] == "" {
		return "", false
	}
	return kindText[k], true
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Void && k <= Read
}

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool {
	return k >= Assign && k <= Neq
}

// IsRelational reports whether k is one of < <= > >= == !=.
func (k Kind) IsRelational() bool {
	return k >= Lss && k <= Neq
}

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= StringLit
}

// IsType reports whether k starts a declaration.
func (k Kind) IsType() bool {
	return k == Int || k == Float || k == Boolean
}

// keywords maps reserved words to their kind.
var keywords = map[string]Kind{
	"void":    Void,
	"main":    Main,
	"int":     Int,
	"float":   Float,
	"boolean": Boolean,
	"true":    True,
	"false":   False,
	"if":      If,
	"else":    Else,
	"while":   While,
	"do":      Do,
	"print":   Print,
	"println": Println,
	"read":    Read,
}

// LookupKeyword returns the kind for ident: a keyword kind, or Name.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Name
}

// Token is one lexical unit. Kind selects which payload field is meaningful:
// Lit always holds the lexeme (the string content for StringLit), Int is set
// for IntLit and Float for FloatLit.
type Token struct {
	Kind  Kind
	Pos   Pos
	Lit   string
	Int   int64
	Float float64

	// Err is set on an IntLit or FloatLit whose lexeme does not convert.
	Err error
}

// String formats the token for dumps: <kind> or <kind, lexeme>.
func (t Token) String() string {
	switch t.Kind {
	case Name, Invalid:
		return fmt.Sprintf("<%s, %s>", t.Kind, t.Lit)
	case IntLit:
		return fmt.Sprintf("<%s, %d>", t.Kind, t.Int)
	case FloatLit:
		return fmt.Sprintf("<%s, %s>", t.Kind, t.Lit)
	case StringLit:
		return fmt.Sprintf("<%s, %s>", t.Kind, strconv.Quote(t.Lit))
	}
	return "<" + t.Kind.String() + ">"
}
