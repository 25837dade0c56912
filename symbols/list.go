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
	"io"
)

// MultipleDefinitions is appended to the report line of a symbol that has
// been defined more than once.
const MultipleDefinitions = "Error: This variable is multiple times defined; first value used"

// WriteReport outputs the symbol table as a header followed by one line per
// symbol and then a blank line.
func (t *Table) WriteReport(output io.Writer) error {
	if _, err := io.WriteString(output, "Symbol Table\n"); err != nil {
		return err
	}

	for _, sym := range t.Symbols() {
		var err error
		if sym.MultiplyDefined() {
			_, err = fmt.Fprintf(output, "%s=%d %s\n", sym.Name, sym.Address, MultipleDefinitions)
		} else {
			_, err = fmt.Fprintf(output, "%s=%d\n", sym.Name, sym.Address)
		}
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, "\n")
	return err
}
