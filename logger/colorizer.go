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

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/modlink/easyterm"
	"github.com/jetsetilly/modlink/easyterm/ansi"
)

// Colorizer applies a pen to the detail part of every log entry written to
// it. The tag is written in the normal pen.
type Colorizer struct {
	out io.Writer
	pen string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer, pen string) Colorizer {
	return Colorizer{out: out, pen: pen}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, tag+": "+c.pen+detail+ansi.NormalPen+"\n")
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// EchoWriter returns the writer to use with SetEcho() for the file. If the
// file is a terminal then the returned writer colorizes entries.
func EchoWriter(f *os.File) io.Writer {
	if easyterm.IsTerminal(f) {
		return NewColorizer(f, ansi.DimPens["yellow"])
	}
	return f
}
