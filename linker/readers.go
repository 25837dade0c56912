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
	"strconv"

	"github.com/jetsetilly/modlink/curated"
	"github.com/jetsetilly/modlink/tokeniser"
)

// reader reads the scalar values of the source grammar from a token stream.
type reader struct {
	*tokeniser.Stream
}

func newReader(s *tokeniser.Stream) reader {
	return reader{Stream: s}
}

// fail returns a ParseError for the token. if the token stream ended because
// of a read error then the read error is returned instead.
func (rd reader) fail(errno Errno, tk tokeniser.Token) error {
	if err := rd.Err(); err != nil {
		return curated.Errorf("linker: %v", err)
	}
	return newParseError(errno, tk)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSymbol returns true if the string begins with a letter and is followed by
// only letters and digits.
func isSymbol(s string) bool {
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isNumber returns true if the string is only decimal digits.
func isNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// readSymbol reads a symbol name.
func (rd reader) readSymbol() (string, error) {
	tk := rd.Get()
	if tk.IsEnd() {
		return "", rd.fail(SymExpected, tk)
	}
	if len(tk.Text) > MaxSymbolLength {
		return "", rd.fail(SymTooLong, tk)
	}
	if !isSymbol(tk.Text) {
		return "", rd.fail(SymExpected, tk)
	}
	return tk.Text, nil
}

// readInteger reads a non-negative decimal integer. the token is returned so
// that the caller can report errors at the position of the integer.
func (rd reader) readInteger() (int, tokeniser.Token, error) {
	tk := rd.Get()
	if !isNumber(tk.Text) {
		return 0, tk, rd.fail(NumExpected, tk)
	}
	v, err := strconv.Atoi(tk.Text)
	if err != nil {
		return 0, tk, rd.fail(NumExpected, tk)
	}
	return v, tk, nil
}

// readCount reads the length of a definition or use list.
func (rd reader) readCount(errno Errno) (int, error) {
	n, tk, err := rd.readInteger()
	if err != nil {
		return 0, err
	}
	if n > MaxListLength {
		return 0, rd.fail(errno, tk)
	}
	return n, nil
}

// readCodeCount reads the length of an instruction list. the instructions of
// the module start at the base address and must fit in the machine.
func (rd reader) readCodeCount(base int) (int, error) {
	n, tk, err := rd.readInteger()
	if err != nil {
		return 0, err
	}
	if base+n > MachineSize {
		return 0, rd.fail(TooManyInstr, tk)
	}
	return n, nil
}

// readInstruction reads an addressing mode and instruction value.
func (rd reader) readInstruction() (Instruction, error) {
	tk := rd.Get()
	m, ok := ParseMode(tk.Text)
	if !ok {
		return Instruction{}, rd.fail(AddrExpected, tk)
	}

	v, _, err := rd.readInteger()
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{Mode: m, Value: v}, nil
}

// readDefinition reads a symbol and its relative value.
func (rd reader) readDefinition() (string, int, error) {
	name, err := rd.readSymbol()
	if err != nil {
		return "", 0, err
	}
	v, _, err := rd.readInteger()
	if err != nil {
		return "", 0, err
	}
	return name, v, nil
}
