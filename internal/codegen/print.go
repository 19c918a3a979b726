package codegen

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes a numbered listing of p to w. Label markers are flush left,
// everything else is indented:
//
//	   0    addressof i
//	   1    push 0
//	   2    store
//	   3  Label 0:
func Fprint(w io.Writer, p *Program) {
	for i, in := range p.insts {
		if in.Op == OpLabel {
			fmt.Fprintf(w, "%4d  %s\n", i, in)
			continue
		}
		fmt.Fprintf(w, "%4d    %s\n", i, in)
	}
}

// Print writes the listing of p to standard output.
func Print(p *Program) {
	Fprint(os.Stdout, p)
}
