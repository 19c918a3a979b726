package syntax

import (
	"io"
	"strconv"
	"strings"
)

// Scanner turns source text into tokens on demand.
// A Scanner is not restartable; create a new one to rescan.
type Scanner struct {
	source

	litBuf strings.Builder
}

// NewScanner creates a Scanner reading all of src.
// Read errors surface as EOF and are available from Err.
func NewScanner(filename string, src io.Reader) *Scanner {
	s := &Scanner{}
	s.source.init(filename, src)
	return s
}

// Next scans and returns the next token. At end of input it keeps
// returning an EOF token.
func (s *Scanner) Next() Token {
redo:
	s.skipWhitespace()

	tok := Token{Pos: s.pos()}

	switch {
	case s.ch < 0:
		tok.Kind = EOF

	case isLetter(s.ch):
		s.scanIdent(&tok)

	case isDigit(s.ch):
		s.scanNumber(&tok)

	case s.ch == '"':
		s.scanString(&tok)

	case s.ch == '/' && s.peek() == '/':
		s.skipLineComment()
		goto redo

	case s.ch == '/' && s.peek() == '*':
		if !s.skipBlockComment() {
			tok.Kind = Invalid
			tok.Lit = "/*"
		} else {
			goto redo
		}

	default:
		s.scanOperator(&tok)
	}

	return tok
}

// Line returns the line the scanner is currently positioned on.
func (s *Scanner) Line() uint32 {
	return s.line
}

// OperatorText returns the canonical spelling of k; see the package-level
// OperatorText.
func (s *Scanner) OperatorText(k Kind) (string, bool) {
	return OperatorText(k)
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

func (s *Scanner) scanIdent(tok *Token) {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	tok.Lit = s.stopLit()
	tok.Kind = LookupKeyword(tok.Lit)
}

// scanNumber scans a decimal integer or a floating-point literal.
// A float needs a fraction ("1.5", "2.") or an exponent ("1e10").
func (s *Scanner) scanNumber(tok *Token) {
	s.startLit()
	s.nextch()
	tok.Kind = IntLit

	s.scanDigits()

	if s.ch == '.' {
		tok.Kind = FloatLit
		s.continueLit()
		s.nextch()
		s.scanDigits()
	}

	if lower(s.ch) == 'e' {
		tok.Kind = FloatLit
		s.continueLit()
		s.nextch()
		if s.ch == '+' || s.ch == '-' {
			s.continueLit()
			s.nextch()
		}
		if !isDigit(s.ch) {
			tok.Lit = s.stopLit()
			tok.Err = &strconv.NumError{Func: "ParseFloat", Num: tok.Lit, Err: strconv.ErrSyntax}
			return
		}
		s.scanDigits()
	}

	tok.Lit = s.stopLit()

	switch tok.Kind {
	case IntLit:
		tok.Int, tok.Err = strconv.ParseInt(tok.Lit, 10, 64)
	case FloatLit:
		tok.Float, tok.Err = strconv.ParseFloat(tok.Lit, 64)
	}
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanString scans a double-quoted string on a single line. The content is
// taken verbatim; there are no escape sequences. An unterminated string
// becomes an Invalid token.
func (s *Scanner) scanString(tok *Token) {
	s.nextch() // opening "
	s.litBuf.Reset()

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			tok.Kind = StringLit
			tok.Lit = s.stopLit()
			return

		case s.ch == '\n' || s.ch < 0:
			tok.Kind = Invalid
			tok.Lit = `"` + s.stopLit()
			return

		default:
			s.continueLit()
			s.nextch()
		}
	}
}

func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* ... */ comment and reports whether it was
// terminated.
func (s *Scanner) skipBlockComment() bool {
	s.nextch() // /
	s.nextch() // *
	for s.ch >= 0 {
		if s.ch == '*' && s.peek() == '/' {
			s.nextch()
			s.nextch()
			return true
		}
		s.nextch()
	}
	return false
}

// scanOperator scans an operator or delimiter. Characters that start no
// token produce an Invalid token holding the character.
func (s *Scanner) scanOperator(tok *Token) {
	ch := s.ch
	s.nextch()

	// two reports whether the current character is next and consumes it.
	two := func(next rune) bool {
		if s.ch == next {
			s.nextch()
			return true
		}
		return false
	}

	switch ch {
	case '+':
		tok.Kind = Add
	case '-':
		tok.Kind = Sub
	case '*':
		if two('*') {
			tok.Kind = Pow
		} else {
			tok.Kind = Mul
		}
	case '/':
		tok.Kind = Div
	case '%':
		tok.Kind = Rem
	case '=':
		if two('=') {
			tok.Kind = Eql
		} else {
			tok.Kind = Assign
		}
	case '!':
		if two('=') {
			tok.Kind = Neq
		} else {
			tok.Kind = Not
		}
	case '<':
		if two('=') {
			tok.Kind = Leq
		} else {
			tok.Kind = Lss
		}
	case '>':
		if two('=') {
			tok.Kind = Geq
		} else {
			tok.Kind = Gtr
		}
	case '|':
		if !two('|') {
			tok.Kind = Invalid
			tok.Lit = "|"
			return
		}
		tok.Kind = OrOr
	case '&':
		if !two('&') {
			tok.Kind = Invalid
			tok.Lit = "&"
			return
		}
		tok.Kind = AndAnd
	case ',':
		tok.Kind = Comma
	case ';':
		tok.Kind = Semi
	case '(':
		tok.Kind = Lparen
	case ')':
		tok.Kind = Rparen
	case '{':
		tok.Kind = Lbrace
	case '}':
		tok.Kind = Rbrace
	case '[':
		tok.Kind = Lbrack
	case ']':
		tok.Kind = Rbrack
	default:
		tok.Kind = Invalid
		tok.Lit = string(ch)
		return
	}

	tok.Lit, _ = OperatorText(tok.Kind)
}
