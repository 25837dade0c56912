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

// Package symbols holds the global symbol table of a link. Symbols are keyed
// by name and the first definition of a name is always the authoritative
// definition. Later definitions of the same name only increase the definition
// count of the symbol.
//
// Iteration over the table, and the listing produced by WriteReport(), is
// always in name order.
package symbols
