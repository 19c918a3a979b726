package syntax

import (
	"strconv"
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "end-of-input"},
		{Invalid, "invalid"},
		{Name, "id"},
		{IntLit, "int-number"},
		{FloatLit, "float-number"},
		{StringLit, "string"},
		{Assign, "assignment"},
		{Pow, "power"},
		{OrOr, "or"},
		{Neq, "not-equal"},
		{Semi, "semicolon"},
		{Lbrace, "open-curly-bracket"},
		{Rbrack, "closed-square-bracket"},
		{Void, "void"},
		{Println, "println"},
		{kindCount, "kind(" + strconv.Itoa(int(kindCount)) + ")"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestOperatorText(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		ok   bool
	}{
		{Add, "+", true},
		{Pow, "**", true},
		{Leq, "<=", true},
		{Neq, "!=", true},
		{OrOr, "||", true},
		{Lbrack, "[", true},
		{While, "while", true},

		// no fixed spelling
		{EOF, "", false},
		{Invalid, "", false},
		{Name, "", false},
		{IntLit, "", false},
		{FloatLit, "", false},
		{StringLit, "", false},
		{kindCount + 3, "", false},
	}

	for _, tt := range tests {
		text, ok := OperatorText(tt.kind)
		if text != tt.text || ok != tt.ok {
			t.Errorf("OperatorText(%s) = %q, %v; want %q, %v", tt.kind, text, ok, tt.text, tt.ok)
		}
	}
}

func TestOperatorTextRoundTrip(t *testing.T) {
	// Every kind with a spelling must scan back to itself.
	for k := Kind(0); k < kindCount; k++ {
		text, ok := OperatorText(k)
		if !ok {
			continue
		}
		s := NewScanner("test", strings.NewReader(text))
		if tok := s.Next(); tok.Kind != k {
			t.Errorf("scanning %q gave %s, want %s", text, tok.Kind, k)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []Kind{Void, Main, Int, Float, Boolean, True, False, If, Else, While, Do, Print, Println, Read} {
		if !k.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false", k)
		}
	}
	for _, k := range []Kind{Lss, Leq, Gtr, Geq, Eql, Neq} {
		if !k.IsRelational() {
			t.Errorf("%s.IsRelational() = false", k)
		}
		if !k.IsOperator() {
			t.Errorf("%s.IsOperator() = false", k)
		}
	}
	for _, k := range []Kind{Add, Assign, Not, Semi, Name} {
		if k.IsRelational() {
			t.Errorf("%s.IsRelational() = true", k)
		}
	}
	if Semi.IsOperator() || Name.IsKeyword() {
		t.Error("delimiter or name misclassified")
	}
	for _, k := range []Kind{Int, Float, Boolean} {
		if !k.IsType() {
			t.Errorf("%s.IsType() = false", k)
		}
	}
	if True.IsType() || IntLit.IsType() {
		t.Error("IsType accepted a non-type kind")
	}
	if !IntLit.IsLiteral() || !StringLit.IsLiteral() || Name.IsLiteral() {
		t.Error("IsLiteral misclassified")
	}
}

func TestLookupKeyword(t *testing.T) {
	if got := LookupKeyword("while"); got != While {
		t.Errorf("LookupKeyword(while) = %s", got)
	}
	if got := LookupKeyword("whilst"); got != Name {
		t.Errorf("LookupKeyword(whilst) = %s", got)
	}
	if got := LookupKeyword("Main"); got != Name {
		t.Errorf("keywords are case-sensitive, got %s", got)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Semi, Lit: ";"}, "<semicolon>"},
		{Token{Kind: Name, Lit: "total"}, "<id, total>"},
		{Token{Kind: IntLit, Lit: "42", Int: 42}, "<int-number, 42>"},
		{Token{Kind: FloatLit, Lit: "2.50", Float: 2.5}, "<float-number, 2.50>"},
		{Token{Kind: StringLit, Lit: "hi there"}, `<string, "hi there">`},
		{Token{Kind: Invalid, Lit: "@"}, "<invalid, @>"},
		{Token{Kind: EOF}, "<end-of-input>"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
