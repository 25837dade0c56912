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

package symbols_test

import (
	"testing"

	"github.com/jetsetilly/modlink/symbols"
	"github.com/jetsetilly/modlink/test"
)

func TestDefine(t *testing.T) {
	tbl := symbols.NewTable()

	sym, ok := tbl.Define("xy", 1, 0, 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sym.Address, 2)
	test.ExpectEquality(t, sym.Definitions, 1)

	sym, ok = tbl.Define("z", 2, 5, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sym.Address, 6)

	// the first definition is authoritative
	sym, ok = tbl.Define("xy", 3, 10, 0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, sym.Address, 2)
	test.ExpectEquality(t, sym.Module, 1)
	test.ExpectEquality(t, sym.Definitions, 2)
	test.ExpectSuccess(t, sym.MultiplyDefined())

	_, ok = tbl.Lookup("missing")
	test.ExpectFailure(t, ok)

	sym, ok = tbl.Lookup("z")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sym.Module, 2)
}

func TestOrder(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Define("Z", 1, 0, 0)
	tbl.Define("B", 1, 0, 1)
	tbl.Define("a", 2, 3, 0)
	tbl.Define("A", 2, 3, 1)

	syms := tbl.Symbols()
	test.DemandEquality(t, len(syms), 4)
	test.ExpectEquality(t, syms[0].Name, "A")
	test.ExpectEquality(t, syms[1].Name, "B")
	test.ExpectEquality(t, syms[2].Name, "Z")
	test.ExpectEquality(t, syms[3].Name, "a")

	syms = tbl.DefinedIn(2)
	test.DemandEquality(t, len(syms), 2)
	test.ExpectEquality(t, syms[0].Name, "A")
	test.ExpectEquality(t, syms[1].Name, "a")
}

func TestZeroRelative(t *testing.T) {
	tbl := symbols.NewTable()
	sym, _ := tbl.Define("X", 2, 7, 5)
	test.ExpectEquality(t, sym.Address, 12)

	sym.ZeroRelative()
	test.ExpectEquality(t, sym.Address, 7)
	test.ExpectEquality(t, sym.Relative, 0)
}

func TestUnused(t *testing.T) {
	tbl := symbols.NewTable()
	a, _ := tbl.Define("A", 1, 0, 0)
	tbl.Define("B", 1, 0, 1)
	a.Uses++

	syms := tbl.Unused()
	test.DemandEquality(t, len(syms), 1)
	test.ExpectEquality(t, syms[0].Name, "B")
}

func TestReport(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Define("xy", 1, 0, 2)
	tbl.Define("z", 2, 5, 1)
	tbl.Define("xy", 3, 10, 0)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tbl.WriteReport(tw))
	test.ExpectEquality(t, tw.String(), "Symbol Table\n"+
		"xy=2 Error: This variable is multiple times defined; first value used\n"+
		"z=6\n"+
		"\n")

	tw.Clear()
	test.ExpectSuccess(t, symbols.NewTable().WriteReport(tw))
	test.ExpectEquality(t, tw.String(), "Symbol Table\n\n")
}

func TestString(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Define("xy", 1, 0, 2)
	tbl.Define("xy", 2, 3, 0)
	test.ExpectEquality(t, tbl.String(), "xy -> 2 (module 1 + 2) x2\n")
}
