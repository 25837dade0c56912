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

package tokeniser_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/modlink/test"
	"github.com/jetsetilly/modlink/tokeniser"
)

func expectToken(t *testing.T, tk tokeniser.Token, text string, line int, offset int) {
	t.Helper()
	test.ExpectEquality(t, tk.Text, text, "text")
	test.ExpectEquality(t, tk.Line, line, text, "line")
	test.ExpectEquality(t, tk.Offset, offset, text, "offset")
}

func TestPositions(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader("1 xy 2\n  0\n\t3 R 1004\n"))

	expectToken(t, s.Get(), "1", 1, 1)
	expectToken(t, s.Get(), "xy", 1, 3)
	expectToken(t, s.Get(), "2", 1, 6)
	expectToken(t, s.Get(), "0", 2, 3)
	expectToken(t, s.Get(), "3", 3, 2)
	expectToken(t, s.Get(), "R", 3, 4)

	test.ExpectFailure(t, s.IsEnd())
	expectToken(t, s.Get(), "1004", 3, 6)

	// lookahead means that the stream has ended as soon as the last token
	// has been returned
	test.ExpectSuccess(t, s.IsEnd())

	// end of input is positioned after the last character of the last line
	expectToken(t, s.Get(), "", 3, 10)
	expectToken(t, s.Get(), "", 3, 10)
	test.ExpectSuccess(t, s.Get().IsEnd())
	test.ExpectSuccess(t, s.Err())
}

func TestNoFinalNewline(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader("1 A 0"))
	expectToken(t, s.Get(), "1", 1, 1)
	expectToken(t, s.Get(), "A", 1, 3)
	expectToken(t, s.Get(), "0", 1, 5)
	expectToken(t, s.Get(), "", 1, 6)
}

func TestEmpty(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader(""))
	test.ExpectSuccess(t, s.IsEnd())
	expectToken(t, s.Get(), "", 1, 1)

	// input of only delimiters has no text to be positioned after
	s = tokeniser.NewStream(strings.NewReader(" \t\x00 \n\n"))
	test.ExpectSuccess(t, s.IsEnd())
	expectToken(t, s.Get(), "", 1, 1)
}

func TestEndAfterBlankLines(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader("1 abc 0\n1 x\n\n"))
	expectToken(t, s.Get(), "1", 1, 1)
	expectToken(t, s.Get(), "abc", 1, 3)
	expectToken(t, s.Get(), "0", 1, 7)
	expectToken(t, s.Get(), "1", 2, 1)
	expectToken(t, s.Get(), "x", 2, 3)

	// the end is on the last line with text, not on the blank line
	expectToken(t, s.Get(), "", 2, 4)

	// trailing spaces and blank lines containing delimiters are ignored
	s = tokeniser.NewStream(strings.NewReader("1 x  \r\n \t\n  \n"))
	s.Get()
	s.Get()
	expectToken(t, s.Get(), "", 1, 4)
}

func TestPeek(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader("A B"))
	expectToken(t, s.Peek(), "A", 1, 1)
	expectToken(t, s.Peek(), "A", 1, 1)
	expectToken(t, s.Get(), "A", 1, 1)
	expectToken(t, s.Peek(), "B", 1, 3)
}

func TestDelimiters(t *testing.T) {
	s := tokeniser.NewStream(strings.NewReader("a\x00b\r\nc"))
	expectToken(t, s.Get(), "a", 1, 1)
	expectToken(t, s.Get(), "b", 1, 3)
	expectToken(t, s.Get(), "c", 2, 1)
}

type failingReader struct {
	n int
}

var errFailing = errors.New("failing reader")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.n > 0 {
		return 0, errFailing
	}
	r.n++
	return copy(p, "1 A"), nil
}

func TestReadError(t *testing.T) {
	s := tokeniser.NewStream(&failingReader{})
	expectToken(t, s.Get(), "1", 1, 1)
	expectToken(t, s.Get(), "A", 1, 3)
	test.ExpectSuccess(t, s.IsEnd())
	test.ExpectSuccess(t, errors.Is(s.Err(), errFailing))

	s = tokeniser.NewStream(io.LimitReader(strings.NewReader("abc"), 0))
	test.ExpectSuccess(t, s.IsEnd())
	test.ExpectSuccess(t, s.Err())
}
