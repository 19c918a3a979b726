// Package codegen holds the instruction stream produced for the stack
// machine: opcodes, the append-only Program sink, jump labels, and a
// checker for the guarantees the executor relies on.
package codegen

import "fmt"

// Op is a stack machine opcode.
type Op int

const (
	OpInvalid Op = iota

	// Memory
	OpPush      // push <literal>
	OpAddressOf // addressof <name>
	OpLoad      // replace address on top with the value stored there
	OpStore     // store value into address below it
	OpArray     // array <name> <type> <size>

	// Arithmetic
	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
	OpRem // %
	OpPow // **

	// Logic
	OpOr  // ||
	OpAnd // &&
	OpNot // !

	// Comparison
	OpLss // <
	OpLeq // <=
	OpGtr // >
	OpGeq // >=
	OpEql // ==
	OpNeq // !=

	// Control
	OpGoFalse // gofalse <label>
	OpGoto    // goto <label>
	OpLabel   // <label>:

	// I/O
	OpPrint   // print
	OpPrintln // println
	OpLiteral // literal '<string>'
	OpOstream // ostream
	OpRead    // read

	OpHalt // halt

	opCount
)

var opNames = [...]string{
	OpInvalid:   "invalid",
	OpPush:      "push",
	OpAddressOf: "addressof",
	OpLoad:      "load",
	OpStore:     "store",
	OpArray:     "array",
	OpAdd:       "+",
	OpSub:       "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpRem:       "%",
	OpPow:       "**",
	OpOr:        "||",
	OpAnd:       "&&",
	OpNot:       "!",
	OpLss:       "<",
	OpLeq:       "<=",
	OpGtr:       ">",
	OpGeq:       ">=",
	OpEql:       "==",
	OpNeq:       "!=",
	OpGoFalse:   "gofalse",
	OpGoto:      "goto",
	OpLabel:     "label",
	OpPrint:     "print",
	OpPrintln:   "println",
	OpLiteral:   "literal",
	OpOstream:   "ostream",
	OpRead:      "read",
	OpHalt:      "halt",
}

// opArgs is the operand count of each opcode.
var opArgs = [...]int{
	OpPush:      1,
	OpAddressOf: 1,
	OpArray:     3,
	OpGoFalse:   1,
	OpGoto:      1,
	OpLabel:     1,
	OpLiteral:   1,
	OpHalt:      0,
}

// String returns the mnemonic of the opcode.
func (op Op) String() string {
	if op >= 0 && op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// NumArgs returns the number of operands op takes.
func (op Op) NumArgs() int {
	if op > OpInvalid && op < opCount {
		return opArgs[op]
	}
	return 0
}

// IsJump reports whether op transfers control to a label operand.
func (op Op) IsJump() bool {
	return op == OpGoFalse || op == OpGoto
}

var mnemonics = func() map[string]Op {
	m := make(map[string]Op, opCount)
	for op := OpInvalid + 1; op < opCount; op++ {
		m[opNames[op]] = op
	}
	return m
}()

// Lookup returns the opcode spelled mnemonic.
func Lookup(mnemonic string) (Op, bool) {
	op, ok := mnemonics[mnemonic]
	return op, ok
}
