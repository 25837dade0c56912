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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer []byte
}

// Help writes the buffered flag usage to output, with the mode banner and
// sub-mode information added.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string) {
	if output == nil {
		return
	}

	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	// the flag package writes only the usage line if there are no flags
	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", helpLines[0], banner)
	} else {
		fmt.Fprintln(output, helpLines[0])
	}

	// help message produced by flag package
	if len(helpLines) > 1 {
		io.WriteString(output, strings.Join(helpLines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// separate sub-mode information from flag information
		if len(helpLines) > 2 {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}
