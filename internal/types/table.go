package types

import (
	"sort"
	"strings"
)

// Table is the flat symbol table of one compilation. There is a single
// scope and no removal: a name, once declared, stays declared.
type Table struct {
	elems map[string]*Symbol
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{elems: make(map[string]*Symbol)}
}

// Insert adds sym to the table.
// If a symbol with the same name already exists, Insert leaves the table
// unchanged and returns the existing symbol. Otherwise it returns nil.
func (t *Table) Insert(sym *Symbol) *Symbol {
	if existing := t.elems[sym.name]; existing != nil {
		return existing
	}
	t.elems[sym.name] = sym
	return nil
}

// Lookup returns the symbol declared as name, if any.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.elems[name]
	return sym, ok
}

// Len returns the number of declared names.
func (t *Table) Len() int {
	return len(t.elems)
}

// Names returns the declared names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.elems))
	for name := range t.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns the declared symbols sorted by name.
func (t *Table) Symbols() []*Symbol {
	names := t.Names()
	syms := make([]*Symbol, len(names))
	for i, name := range names {
		syms[i] = t.elems[name]
	}
	return syms
}

// String lists the table one symbol per line, sorted by name.
func (t *Table) String() string {
	var buf strings.Builder
	for _, sym := range t.Symbols() {
		buf.WriteString(sym.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
