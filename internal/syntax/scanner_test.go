package syntax

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// scanAll returns every token of src up to and excluding EOF.
func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s := NewScanner("test", strings.NewReader(src))
	var toks []Token
	for i := 0; ; i++ {
		if i > 10000 {
			t.Fatal("scanner did not reach EOF")
		}
		tok := s.Next()
		if tok.Kind == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kindsOf(toks []Token) []Kind {
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		lits  []string
	}{
		{"ident", "foo", []Kind{Name}, []string{"foo"}},
		{"ident_underscore", "_bar9", []Kind{Name}, []string{"_bar9"}},
		{"keyword_prefix", "integer", []Kind{Name}, []string{"integer"}},
		{"keywords", "void main int float boolean", []Kind{Void, Main, Int, Float, Boolean}, []string{"void", "main", "int", "float", "boolean"}},
		{"keywords_ctl", "if else while do", []Kind{If, Else, While, Do}, []string{"if", "else", "while", "do"}},
		{"keywords_io", "print println read true false", []Kind{Print, Println, Read, True, False}, []string{"print", "println", "read", "true", "false"}},

		{"int", "123", []Kind{IntLit}, []string{"123"}},
		{"int_zero", "0", []Kind{IntLit}, []string{"0"}},
		{"float", "3.14", []Kind{FloatLit}, []string{"3.14"}},
		{"float_trailing_dot", "2.", []Kind{FloatLit}, []string{"2."}},
		{"float_exp", "1e10", []Kind{FloatLit}, []string{"1e10"}},
		{"float_exp_signed", "2.5E-3", []Kind{FloatLit}, []string{"2.5E-3"}},

		{"string", `"hello world"`, []Kind{StringLit}, []string{"hello world"}},
		{"string_empty", `""`, []Kind{StringLit}, []string{""}},
		{"string_backslash_verbatim", `"a\nb"`, []Kind{StringLit}, []string{`a\nb`}},

		{"arith", "+ - * / % **", []Kind{Add, Sub, Mul, Div, Rem, Pow}, []string{"+", "-", "*", "/", "%", "**"}},
		{"pow_then_mul", "***", []Kind{Pow, Mul}, []string{"**", "*"}},
		{"relational", "< <= > >= == !=", []Kind{Lss, Leq, Gtr, Geq, Eql, Neq}, []string{"<", "<=", ">", ">=", "==", "!="}},
		{"logical", "|| && !", []Kind{OrOr, AndAnd, Not}, []string{"||", "&&", "!"}},
		{"assign", "=", []Kind{Assign}, []string{"="}},
		{"delims", ", ; ( ) { } [ ]", []Kind{Comma, Semi, Lparen, Rparen, Lbrace, Rbrace, Lbrack, Rbrack}, []string{",", ";", "(", ")", "{", "}", "[", "]"}},
		{"no_spaces", "a[i]=b**2;", []Kind{Name, Lbrack, Name, Rbrack, Assign, Name, Pow, IntLit, Semi}, []string{"a", "[", "i", "]", "=", "b", "**", "2", ";"}},

		{"line_comment", "a // note\nb", []Kind{Name, Name}, []string{"a", "b"}},
		{"line_comment_eof", "a // note", []Kind{Name}, []string{"a"}},
		{"block_comment", "a /* x\ny */ b", []Kind{Name, Name}, []string{"a", "b"}},
		{"divide_not_comment", "a / b", []Kind{Name, Div, Name}, []string{"a", "/", "b"}},

		{"invalid_char", "@", []Kind{Invalid}, []string{"@"}},
		{"single_pipe", "a | b", []Kind{Name, Invalid, Name}, []string{"a", "|", "b"}},
		{"single_amp", "&", []Kind{Invalid}, []string{"&"}},
		{"unterminated_string", "\"abc\nx", []Kind{Invalid, Name}, []string{`"abc`, "x"}},
		{"unterminated_comment", "a /* never", []Kind{Name, Invalid}, []string{"a", "/*"}},

		{"whitespace", " \t\r\n a \n", []Kind{Name}, []string{"a"}},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), kindsOf(toks), len(tt.kinds))
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: kind = %s, want %s", i, tok.Kind, tt.kinds[i])
				}
				if tok.Lit != tt.lits[i] {
					t.Errorf("token %d: lit = %q, want %q", i, tok.Lit, tt.lits[i])
				}
			}
		})
	}
}

func TestScanNumberValues(t *testing.T) {
	toks := scanAll(t, "42 0 9223372036854775807 1.5 2e3")
	if toks[0].Int != 42 || toks[1].Int != 0 || toks[2].Int != 9223372036854775807 {
		t.Errorf("int values = %d, %d, %d", toks[0].Int, toks[1].Int, toks[2].Int)
	}
	if toks[3].Float != 1.5 || toks[4].Float != 2000 {
		t.Errorf("float values = %g, %g", toks[3].Float, toks[4].Float)
	}
	for i, tok := range toks {
		if tok.Err != nil {
			t.Errorf("token %d: unexpected Err %v", i, tok.Err)
		}
	}
}

func TestScanMalformedNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
		lit  string
	}{
		{"99999999999999999999", IntLit, "99999999999999999999"},
		{"1e", FloatLit, "1e"},
		{"3.0e+", FloatLit, "3.0e+"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src))
			tok := s.Next()
			if tok.Kind != tt.kind || tok.Lit != tt.lit {
				t.Fatalf("got %s %q, want %s %q", tok.Kind, tok.Lit, tt.kind, tt.lit)
			}
			var numErr *strconv.NumError
			if !errors.As(tok.Err, &numErr) {
				t.Fatalf("Err = %v, want *strconv.NumError", tok.Err)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	src := "void main {\n  int a;\n\n  a = 1;\n}"
	toks := scanAll(t, src)

	want := []struct {
		kind      Kind
		line, col uint32
	}{
		{Void, 1, 1}, {Main, 1, 6}, {Lbrace, 1, 11},
		{Int, 2, 3}, {Name, 2, 7}, {Semi, 2, 8},
		{Name, 4, 3}, {Assign, 4, 5}, {IntLit, 4, 7}, {Semi, 4, 8},
		{Rbrace, 5, 1},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Pos.Line() != w.line || tok.Pos.Col() != w.col {
			t.Errorf("token %d: %s at %s, want %s at %d:%d", i, tok.Kind, tok.Pos, w.kind, w.line, w.col)
		}
	}
}

func TestScannerLineMonotonic(t *testing.T) {
	s := NewScanner("test", strings.NewReader("a\n/* two\nlines */ b\n\nc"))
	last := s.Line()
	for {
		tok := s.Next()
		if s.Line() < last {
			t.Fatalf("Line() went from %d to %d", last, s.Line())
		}
		last = s.Line()
		if tok.Kind == EOF {
			break
		}
	}
	if last != 5 {
		t.Errorf("final Line() = %d, want 5", last)
	}
}

func TestScannerEOFRepeats(t *testing.T) {
	s := NewScanner("test", strings.NewReader("x"))
	s.Next()
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Kind != EOF {
			t.Fatalf("call %d after end: got %s, want EOF", i, tok.Kind)
		}
	}
}

func TestScannerOperatorText(t *testing.T) {
	s := NewScanner("test", strings.NewReader(""))
	if text, ok := s.OperatorText(Geq); !ok || text != ">=" {
		t.Errorf("OperatorText(Geq) = %q, %v", text, ok)
	}
	if _, ok := s.OperatorText(Name); ok {
		t.Error("OperatorText(Name) reported a spelling")
	}
}
