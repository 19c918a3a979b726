package translate

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/smc/internal/syntax"
)

// SyntaxError reports a token that does not fit the grammar.
// Expected is the kind the parser required; Msg, when set, replaces the
// generated description.
type SyntaxError struct {
	Pos      syntax.Pos
	Expected syntax.Kind
	Msg      string

	// Text is the spelling of Expected as reported by the tokenizer, empty
	// when the tokenizer has none for it.
	Text string
}

func (e *SyntaxError) Error() string {
	return errorAt(e.Pos, e.message())
}

func (e *SyntaxError) message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Text != "":
		return e.Expected.String() + " expected"
	}
	return "token " + e.Expected.String() + " is not configured"
}

// DuplicateDeclarationError reports a second declaration of Name.
type DuplicateDeclarationError struct {
	Pos  syntax.Pos
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return errorAt(e.Pos, fmt.Sprintf("identifier '%s' is already declared", e.Name))
}

// UndeclaredIdentifierError reports a use of Name before any declaration.
type UndeclaredIdentifierError struct {
	Pos  syntax.Pos
	Name string
}

func (e *UndeclaredIdentifierError) Error() string {
	return errorAt(e.Pos, fmt.Sprintf("identifier '%s' not declared", e.Name))
}

// InvalidLiteralError reports a missing or malformed number where one was
// required. Lit is the offending lexeme, empty when no literal was present.
type InvalidLiteralError struct {
	Pos syntax.Pos
	Lit string
}

func (e *InvalidLiteralError) Error() string {
	if e.Lit == "" {
		return errorAt(e.Pos, "integer literal expected")
	}
	return errorAt(e.Pos, fmt.Sprintf("invalid literal '%s'", e.Lit))
}

// errorAt formats a diagnostic the way every compile error is reported.
func errorAt(pos syntax.Pos, msg string) string {
	return fmt.Sprintf("Error at line %d: %s", pos.Line(), msg)
}

// Line returns the source line err is attributed to, or 0 if err does not
// wrap one of the compile errors.
func Line(err error) uint32 {
	var (
		se *SyntaxError
		de *DuplicateDeclarationError
		ue *UndeclaredIdentifierError
		le *InvalidLiteralError
	)
	switch {
	case errors.As(err, &se):
		return se.Pos.Line()
	case errors.As(err, &de):
		return de.Pos.Line()
	case errors.As(err, &ue):
		return ue.Pos.Line()
	case errors.As(err, &le):
		return le.Pos.Line()
	}
	return 0
}
