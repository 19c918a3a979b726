// Package types holds the declared names of one compilation: their base
// type and whether they are scalars or fixed-size arrays.
package types

import (
	"fmt"

	"github.com/you-not-fish/smc/internal/syntax"
)

// BasicKind is the base type of a declared name.
type BasicKind int

const (
	Invalid BasicKind = iota
	Int
	Float
	Boolean
)

var basicNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Float:   "float",
	Boolean: "boolean",
}

func (k BasicKind) String() string {
	if k >= 0 && int(k) < len(basicNames) {
		return basicNames[k]
	}
	return fmt.Sprintf("BasicKind(%d)", int(k))
}

// BasicFromToken maps a type keyword to its kind. It returns Invalid for
// any other token kind.
func BasicFromToken(k syntax.Kind) BasicKind {
	switch k {
	case syntax.Int:
		return Int
	case syntax.Float:
		return Float
	case syntax.Boolean:
		return Boolean
	}
	return Invalid
}

// Shape distinguishes scalars from one-dimensional arrays.
// The zero value is a scalar.
type Shape struct {
	array bool
	size  int64
}

// Scalar is the shape of a plain variable.
var Scalar = Shape{}

// Array returns the shape of an array with size elements.
func Array(size int64) Shape {
	return Shape{array: true, size: size}
}

// IsArray reports whether the shape is an array.
func (s Shape) IsArray() bool { return s.array }

// Size returns the element count of an array shape, or 0 for a scalar.
func (s Shape) Size() int64 { return s.size }

func (s Shape) String() string {
	if s.array {
		return fmt.Sprintf("array(%d)", s.size)
	}
	return "scalar"
}

// Symbol is one declared name. Symbols are immutable once declared.
type Symbol struct {
	name  string
	typ   BasicKind
	shape Shape
	pos   syntax.Pos
}

// NewSymbol creates a symbol declared at pos.
func NewSymbol(pos syntax.Pos, name string, typ BasicKind, shape Shape) *Symbol {
	return &Symbol{name: name, typ: typ, shape: shape, pos: pos}
}

func (s *Symbol) Name() string { return s.name }
func (s *Symbol) Type() BasicKind { return s.typ }
func (s *Symbol) Shape() Shape { return s.shape }
func (s *Symbol) Pos() syntax.Pos { return s.pos }
func (s *Symbol) IsArray() bool { return s.shape.array }

// String formats the symbol as "name: type" or "name: type[size]".
func (s *Symbol) String() string {
	if s.shape.array {
		return fmt.Sprintf("%s: %s[%d]", s.name, s.typ, s.shape.size)
	}
	return fmt.Sprintf("%s: %s", s.name, s.typ)
}
