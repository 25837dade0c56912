// This file is part of Modlink.
//
// Modlink is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Modlink is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Modlink.  If not, see <https://www.gnu.org/licenses/>.

package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps a name to a Symbol.
type Table struct {
	entries map[string]*Symbol

	// index of keys in entries. sortable through the sort.Interface
	idx []string
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Symbol),
		idx:     make([]string, 0),
	}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, n := range t.idx {
		sym := t.entries[n]
		s.WriteString(fmt.Sprintf("%s -> %d (module %d + %d)", n, sym.Address, sym.Module, sym.Relative))
		if sym.Definitions > 1 {
			s.WriteString(fmt.Sprintf(" x%d", sym.Definitions))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Define a symbol. If the symbol has not been seen before then it is added to
// the table with an address of base plus relative. Otherwise the definition
// count of the existing symbol is increased and the existing values are kept.
//
// Returns the symbol in the table and whether it is a new entry.
func (t *Table) Define(name string, module int, base int, relative int) (*Symbol, bool) {
	if sym, ok := t.entries[name]; ok {
		sym.Definitions++
		return sym, false
	}

	sym := &Symbol{
		Name:        name,
		Address:     base + relative,
		Relative:    relative,
		Module:      module,
		Definitions: 1,
	}
	t.entries[name] = sym
	t.idx = append(t.idx, name)
	sort.Sort(t)

	return sym, true
}

// Lookup a symbol by name.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.entries[name]
	return sym, ok
}

// Symbols returns every symbol in name order.
func (t *Table) Symbols() []*Symbol {
	syms := make([]*Symbol, len(t.idx))
	for i, n := range t.idx {
		syms[i] = t.entries[n]
	}
	return syms
}

// DefinedIn returns the symbols first defined by the numbered module, in name
// order.
func (t *Table) DefinedIn(module int) []*Symbol {
	var syms []*Symbol
	for _, n := range t.idx {
		if t.entries[n].Module == module {
			syms = append(syms, t.entries[n])
		}
	}
	return syms
}

// Unused returns the symbols that have never been used, in name order.
func (t *Table) Unused() []*Symbol {
	var syms []*Symbol
	for _, n := range t.idx {
		if t.entries[n].Uses == 0 {
			syms = append(syms, t.entries[n])
		}
	}
	return syms
}

// Len implements the sort.Interface.
func (t *Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
