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

package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

// Writer implements the io.Writer interface. Everything written to it is
// included in the digest.
type Writer struct {
	h hash.Hash
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter() *Writer {
	return &Writer{
		h: sha1.New(),
	}
}

// Write implements the io.Writer interface.
func (dig *Writer) Write(p []byte) (int, error) {
	return dig.h.Write(p)
}

// Hash implements digest.Digest interface.
func (dig *Writer) Hash() string {
	return fmt.Sprintf("%x", dig.h.Sum(nil))
}

// ResetDigest implements digest.Digest interface.
func (dig *Writer) ResetDigest() {
	dig.h.Reset()
}
