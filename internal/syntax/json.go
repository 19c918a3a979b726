package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of a token stream to w.
func FprintJSON(w io.Writer, toks []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	out := make([]interface{}, len(toks))
	for i, tok := range toks {
		out[i] = toJSON(tok)
	}
	return enc.Encode(out)
}

func toJSON(tok Token) interface{} {
	m := map[string]interface{}{
		"kind": tok.Kind.String(),
		"pos":  tok.Pos.String(),
	}
	if tok.Lit != "" {
		m["lit"] = tok.Lit
	}

	switch {
	case tok.Err != nil:
		m["error"] = tok.Err.Error()
	case tok.Kind == IntLit:
		m["value"] = tok.Int
	case tok.Kind == FloatLit:
		m["value"] = tok.Float
	}
	return m
}
