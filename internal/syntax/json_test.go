package syntax

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestFprintJSON(t *testing.T) {
	s := NewScanner("", strings.NewReader("x = 42 + 1e; @"))
	var toks []Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := FprintJSON(&buf, toks); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != len(toks) {
		t.Fatalf("got %d entries, want %d", len(got), len(toks))
	}

	tests := []struct {
		i    int
		key  string
		want interface{}
	}{
		{0, "kind", "id"},
		{0, "lit", "x"},
		{0, "pos", "1:1"},
		{1, "kind", "assignment"},
		{2, "value", float64(42)},
		{4, "kind", "float-number"},
		{4, "lit", "1e"},
		{6, "kind", "invalid"},
		{6, "lit", "@"},
		{7, "kind", "end-of-input"},
	}
	for _, tt := range tests {
		if v := got[tt.i][tt.key]; v != tt.want {
			t.Errorf("entry %d %s = %v, want %v", tt.i, tt.key, v, tt.want)
		}
	}
	if _, ok := got[4]["error"]; !ok {
		t.Errorf("malformed literal has no error: %v", got[4])
	}
	if _, ok := got[7]["lit"]; ok {
		t.Errorf("EOF has a literal: %v", got[7])
	}
}
