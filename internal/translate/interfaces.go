package translate

import (
	"github.com/you-not-fish/smc/internal/codegen"
	"github.com/you-not-fish/smc/internal/syntax"
	"github.com/you-not-fish/smc/internal/types"
)

// Tokenizer produces tokens on demand. *syntax.Scanner implements it.
type Tokenizer interface {
	Next() syntax.Token
	Line() uint32
	OperatorText(k syntax.Kind) (string, bool)
}

// Resolver records declarations and answers lookups. *types.Table
// implements it.
type Resolver interface {
	// Insert declares sym and returns nil, or returns the symbol already
	// declared under the same name and leaves the resolver unchanged.
	Insert(sym *types.Symbol) *types.Symbol
	Lookup(name string) (*types.Symbol, bool)
}

// Emitter receives instructions in order. *codegen.Program implements it.
type Emitter interface {
	Emit(op codegen.Op, args ...string)
	EmitLabel(l codegen.Label)
}

var (
	_ Tokenizer = (*syntax.Scanner)(nil)
	_ Resolver  = (*types.Table)(nil)
	_ Emitter   = (*codegen.Program)(nil)
)
