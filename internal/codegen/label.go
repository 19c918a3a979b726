package codegen

import "strconv"

// Label is a jump target, unique within one compilation.
type Label int

// String renders the label as it appears in the instruction stream.
func (l Label) String() string {
	return "Label " + strconv.Itoa(int(l))
}

// Labeler hands out labels for one compilation. The zero value starts at
// Label 0.
type Labeler struct {
	next int
}

// New returns a label distinct from, and greater than, every label
// previously returned by l.
func (l *Labeler) New() Label {
	lab := Label(l.next)
	l.next++
	return lab
}

// Count returns the number of labels allocated so far.
func (l *Labeler) Count() int {
	return l.next
}
