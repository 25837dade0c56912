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

// Package logger is the central log for the linker. Log entries are kept in
// memory and are only output when asked for or when echoing has been turned
// on with SetEcho().
//
// Entries are made up of a tag and a detail string. The detail can be any
// type, it will be converted to a string as though printed with the %v verb.
// Repeated entries are folded into a single entry with a repeat count.
package logger

import (
	"io"
)

// maximum number of entries in the central logger.
const maxCentral = 256

// the central logger used by the package level functions.
var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries to the io.Writer as they are made. A nil
// io.Writer turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
