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

package linker

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/modlink/tokeniser"
)

// Errno identifies the kind of ParseError.
type Errno int

// List of valid Errno values.
const (
	NumExpected Errno = iota
	SymExpected
	AddrExpected
	SymTooLong
	TooManyDefInModule
	TooManyUseInModule
	TooManyInstr
)

var errnoNames = [...]string{
	"NUM_EXPECTED",
	"SYM_EXPECTED",
	"ADDR_EXPECTED",
	"SYM_TOO_LONG",
	"TOO_MANY_DEF_IN_MODULE",
	"TOO_MANY_USE_IN_MODULE",
	"TOO_MANY_INSTR",
}

func (e Errno) String() string {
	if e < 0 || int(e) >= len(errnoNames) {
		return fmt.Sprintf("UNKNOWN_%d", int(e))
	}
	return errnoNames[e]
}

// ParseError is a fatal error in the source. Line and Offset are the position
// of the token that caused the error.
type ParseError struct {
	Errno  Errno
	Line   int
	Offset int
}

func newParseError(errno Errno, tk tokeniser.Token) ParseError {
	return ParseError{
		Errno:  errno,
		Line:   tk.Line,
		Offset: tk.Offset,
	}
}

func (er ParseError) Error() string {
	return fmt.Sprintf("Parse Error line %d offset %d: %s", er.Line, er.Offset, er.Errno)
}

// IsParseError returns true if the error is, or wraps, a ParseError.
func IsParseError(err error) bool {
	var pe ParseError
	return errors.As(err, &pe)
}
