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

// Package digest contains an implementation of the io.Writer interface such
// that a crypographic hash of the output of a link is produced. The hash can
// then be used to compare output from subsequent links. If a new hash differs
// from a previously recorded value then something has changed. We use this as
// the basis for the performance check.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
