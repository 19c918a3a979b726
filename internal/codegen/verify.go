package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/smc/internal/types"
)

// Verify checks the guarantees the executor relies on:
//
//   - the program ends with its only halt
//   - every opcode is known and has the right operand count
//   - every label marker is defined once and every jump target is defined
//   - array declarations precede any use of the array
//
// When syms is non-nil, every addressof/array operand must also name a
// declared symbol, and array instructions must agree with its shape.
// Verify returns an error listing all violations, or nil.
func Verify(p *Program, syms *types.Table) error {
	var errs []string

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if p.Len() == 0 {
		add("program is empty")
		return combineErrors(errs)
	}

	defined := make(map[string]int) // label -> index of its marker
	arrays := make(map[string]int)  // array name -> index of its declaration
	var jumps []int

	for i, in := range p.insts {
		if in.Op <= OpInvalid || in.Op >= opCount {
			add("%d: invalid opcode %d", i, int(in.Op))
			continue
		}
		if len(in.Args) != in.Op.NumArgs() {
			add("%d: %s has %d operands, want %d", i, in.Op, len(in.Args), in.Op.NumArgs())
			continue
		}

		switch in.Op {
		case OpHalt:
			if i != p.Len()-1 {
				add("%d: halt before the end of the program", i)
			}

		case OpLabel:
			if prev, ok := defined[in.Args[0]]; ok {
				add("%d: label %q already defined at %d", i, in.Args[0], prev)
				continue
			}
			defined[in.Args[0]] = i

		case OpGoFalse, OpGoto:
			jumps = append(jumps, i)

		case OpArray:
			name := in.Args[0]
			if prev, ok := arrays[name]; ok {
				add("%d: array %s already declared at %d", i, name, prev)
				continue
			}
			arrays[name] = i
			if syms != nil {
				verifyArray(i, in, syms, add)
			}

		case OpAddressOf:
			name := in.Args[0]
			if syms == nil {
				continue
			}
			sym, ok := syms.Lookup(name)
			if !ok {
				add("%d: addressof undeclared name %s", i, name)
				continue
			}
			if sym.IsArray() {
				if at, ok := arrays[name]; !ok || at > i {
					add("%d: addressof array %s before its declaration", i, name)
				}
			}
		}
	}

	for _, i := range jumps {
		in := p.insts[i]
		if _, ok := defined[in.Args[0]]; !ok {
			add("%d: %s to undefined label %q", i, in.Op, in.Args[0])
		}
	}

	if last := p.insts[p.Len()-1]; last.Op != OpHalt {
		add("program ends with %s, want halt", last.Op)
	}

	return combineErrors(errs)
}

func verifyArray(i int, in Instruction, syms *types.Table, add func(string, ...interface{})) {
	name := in.Args[0]
	sym, ok := syms.Lookup(name)
	if !ok {
		add("%d: array %s is not declared", i, name)
		return
	}
	if !sym.IsArray() {
		add("%d: array instruction for scalar %s", i, name)
		return
	}
	if in.Args[1] != sym.Type().String() {
		add("%d: array %s has type %s, declared %s", i, name, in.Args[1], sym.Type())
	}
	if size, err := strconv.ParseInt(in.Args[2], 10, 64); err != nil || size != sym.Shape().Size() {
		add("%d: array %s has size %s, declared %d", i, name, in.Args[2], sym.Shape().Size())
	}
}

// combineErrors creates an error from a list of error strings, or returns nil.
func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("program verification failed:\n  %s", strings.Join(errs, "\n  "))
}
