package codegen

import (
	"fmt"
	"io"
	"strings"
)

// Instruction is one opcode with its textual operands.
type Instruction struct {
	Op   Op
	Args []string
}

// String renders the instruction as one line of program text (without the
// newline).
func (in Instruction) String() string {
	switch in.Op {
	case OpLabel:
		return in.arg(0) + ":"
	case OpLiteral:
		return "literal '" + in.arg(0) + "'"
	}
	if len(in.Args) == 0 {
		return in.Op.String()
	}
	return in.Op.String() + " " + strings.Join(in.Args, " ")
}

func (in Instruction) arg(i int) string {
	if i < len(in.Args) {
		return in.Args[i]
	}
	return ""
}

// Program is the append-only instruction stream of one compilation.
// Instructions are never rewritten or removed once emitted.
type Program struct {
	insts []Instruction
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{}
}

// Emit appends one instruction.
func (p *Program) Emit(op Op, args ...string) {
	p.insts = append(p.insts, Instruction{Op: op, Args: args})
}

// EmitLabel appends the marker that defines l.
func (p *Program) EmitLabel(l Label) {
	p.Emit(OpLabel, l.String())
}

// Len returns the number of emitted instructions.
func (p *Program) Len() int {
	return len(p.insts)
}

// At returns the i'th instruction.
func (p *Program) At(i int) Instruction {
	return p.insts[i]
}

// Instructions returns the emitted instructions in order. The caller must
// not modify the result.
func (p *Program) Instructions() []Instruction {
	return p.insts
}

// Lines returns every instruction rendered as text, in emission order.
func (p *Program) Lines() []string {
	lines := make([]string, len(p.insts))
	for i, in := range p.insts {
		lines[i] = in.String()
	}
	return lines
}

// String renders the program: one instruction per line, each line
// terminated by a newline.
func (p *Program) String() string {
	var buf strings.Builder
	p.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the rendered program to w.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	e := &emitter{w: w}
	for _, in := range p.insts {
		e.emit("%s", in)
	}
	return e.n, e.err
}

// emitter wraps an io.Writer and remembers the first write error.
type emitter struct {
	w   io.Writer
	n   int64
	err error
}

// emit writes a formatted line.
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	n, err := fmt.Fprintf(e.w, format+"\n", args...)
	e.n += int64(n)
	e.err = err
}
