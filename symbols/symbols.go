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

// Symbol is a single entry in the symbol table.
type Symbol struct {
	Name string

	// absolute address of the symbol. this is the base address of the
	// defining module plus the relative value
	Address int

	// the relative value as declared in the defining module
	Relative int

	// the module in which the symbol was first defined. modules count from one
	Module int

	// the number of times the symbol has been defined. a value greater than
	// one means the symbol has been multiply defined
	Definitions int

	// the number of times the symbol has been used by an external reference
	Uses int
}

// MultiplyDefined returns true if the symbol has been defined more than once.
func (sym *Symbol) MultiplyDefined() bool {
	return sym.Definitions > 1
}

// ZeroRelative changes the symbol so that it points to the start of the
// defining module.
func (sym *Symbol) ZeroRelative() {
	sym.Address -= sym.Relative
	sym.Relative = 0
}
