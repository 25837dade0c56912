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

package test

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with a predefined string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffered output.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Lines returns the buffered output split into lines. A trailing newline
// does not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(tw.buffer), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}
