// Package postfix translates infix integer arithmetic into postfix notation
// and evaluates postfix expressions on a value stack.
//
// The accepted expressions are
//
//	expr   = term { ( "+" | "-" ) term }
//	term   = factor { ( "*" | "/" | "%" ) factor }
//	factor = "(" expr ")" | int
//
// so that "9 - 5 + 2 * 3" becomes "9 5 - 2 3 * +".
package postfix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/smc/internal/syntax"
)

// Error is a translation or evaluation failure.
type Error struct {
	Pos syntax.Pos // zero for evaluation errors
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("Error at line %d: %s", e.Pos.Line(), e.Msg)
	}
	return e.Msg
}

// ErrDivisionByZero is returned by Eval for a zero divisor of / or %.
var ErrDivisionByZero = errors.New("division by zero")

// Translate returns the postfix form of the infix expression expr, with
// operands and operators separated by single spaces.
func Translate(expr string) (string, error) {
	t := &translator{s: syntax.NewScanner("", strings.NewReader(expr))}
	t.next()
	t.expr()
	if t.err == nil && t.tok.Kind != syntax.EOF {
		t.fail("operator or end of expression expected")
	}
	if t.err != nil {
		return "", t.err
	}
	return strings.Join(t.out, " "), nil
}

type translator struct {
	s   *syntax.Scanner
	tok syntax.Token
	out []string
	err error
}

func (t *translator) next() {
	if t.err != nil {
		return
	}
	t.tok = t.s.Next()
	if t.tok.Kind == syntax.Invalid {
		t.fail(fmt.Sprintf("invalid token '%s'", t.tok.Lit))
	}
}

func (t *translator) fail(msg string) {
	if t.err == nil {
		t.err = &Error{Pos: t.tok.Pos, Msg: msg}
	}
	t.tok = syntax.Token{Kind: syntax.EOF, Pos: t.tok.Pos}
}

func (t *translator) emit(s string) {
	t.out = append(t.out, s)
}

func (t *translator) expr() {
	t.term()
	for t.tok.Kind == syntax.Add || t.tok.Kind == syntax.Sub {
		op := t.tok.Lit
		t.next()
		t.term()
		t.emit(op)
	}
}

func (t *translator) term() {
	t.factor()
	for t.tok.Kind == syntax.Mul || t.tok.Kind == syntax.Div || t.tok.Kind == syntax.Rem {
		op := t.tok.Lit
		t.next()
		t.factor()
		t.emit(op)
	}
}

func (t *translator) factor() {
	switch t.tok.Kind {
	case syntax.Lparen:
		t.next()
		t.expr()
		if t.tok.Kind != syntax.Rparen {
			t.fail("closed parenthesis expected")
			return
		}
		t.next()

	case syntax.IntLit:
		if t.tok.Err != nil {
			t.fail(fmt.Sprintf("invalid literal '%s'", t.tok.Lit))
			return
		}
		t.emit(strconv.FormatInt(t.tok.Int, 10))
		t.next()

	default:
		t.fail("open parenthesis or int expected")
	}
}

// Eval evaluates a space-separated postfix expression over int64 with
// truncating division.
func Eval(expr string) (int64, error) {
	var stack []int64

	for _, f := range strings.Fields(expr) {
		switch f {
		case "+", "-", "*", "/", "%":
			if len(stack) < 2 {
				return 0, &Error{Msg: fmt.Sprintf("operator %s needs two operands", f)}
			}
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			var v int64
			switch f {
			case "+":
				v = x + y
			case "-":
				v = x - y
			case "*":
				v = x * y
			case "/", "%":
				if y == 0 {
					return 0, ErrDivisionByZero
				}
				if f == "/" {
					v = x / y
				} else {
					v = x % y
				}
			}
			stack = append(stack, v)

		default:
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return 0, &Error{Msg: fmt.Sprintf("invalid operand '%s'", f)}
			}
			stack = append(stack, v)
		}
	}

	if len(stack) != 1 {
		return 0, &Error{Msg: fmt.Sprintf("malformed expression: %d values left on the stack", len(stack))}
	}
	return stack[0], nil
}

// Run translates expr and evaluates the result.
func Run(expr string) (string, int64, error) {
	pf, err := Translate(expr)
	if err != nil {
		return "", 0, err
	}
	v, err := Eval(pf)
	if err != nil {
		return pf, 0, err
	}
	return pf, v, nil
}
