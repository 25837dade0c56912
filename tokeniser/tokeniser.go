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

package tokeniser

import (
	"bufio"
	"fmt"
	"io"
)

// Token is a fragment of the source text and the position at which it began.
// The empty token denotes the end of the input.
type Token struct {
	Text   string
	Line   int
	Offset int
}

// IsEnd returns true if the token denotes the end of the input.
func (tk Token) IsEnd() bool {
	return tk.Text == ""
}

func (tk Token) String() string {
	if tk.IsEnd() {
		return fmt.Sprintf("end of input (line %d offset %d)", tk.Line, tk.Offset)
	}
	return fmt.Sprintf("%s (line %d offset %d)", tk.Text, tk.Line, tk.Offset)
}

// isDelimiter returns true if the character separates tokens.
func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', 0x00:
		return true
	}
	return false
}

// Stream produces tokens from a reader.
type Stream struct {
	r *bufio.Reader

	// line and offset of the most recently read character
	line   int
	offset int

	// position of the most recent character that is not a delimiter
	textLine   int
	textOffset int

	// whether the most recently read character was a newline
	atNewline bool

	// the next token to be returned by Get()
	lookahead Token

	// the first error returned by the reader that is not io.EOF
	err error
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream(r io.Reader) *Stream {
	s := &Stream{
		r:        bufio.NewReader(r),
		line:     1,
		textLine: 1,
	}
	s.lookahead = s.scan()
	return s
}

// readByte returns the next character of the input and updates the position.
// the boolean is false at the end of input.
func (s *Stream) readByte() (byte, bool) {
	c, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF && s.err == nil {
			s.err = err
		}
		return 0, false
	}

	if s.atNewline {
		s.line++
		s.offset = 0
		s.atNewline = false
	}
	s.offset++

	if c == '\n' {
		s.atNewline = true
	} else if !isDelimiter(c) {
		s.textLine = s.line
		s.textOffset = s.offset
	}

	return c, true
}

// end returns the token that denotes the end of input. it is positioned
// immediately after the last character of the last token, ignoring any
// trailing delimiters and blank lines.
func (s *Stream) end() Token {
	return Token{Line: s.textLine, Offset: s.textOffset + 1}
}

// scan the input for the next token.
func (s *Stream) scan() Token {
	var c byte
	var ok bool

	// skip leading delimiters
	for {
		c, ok = s.readByte()
		if !ok {
			return s.end()
		}
		if !isDelimiter(c) {
			break // for loop
		}
	}

	tk := Token{Line: s.line, Offset: s.offset}
	text := []byte{c}

	for {
		c, ok = s.readByte()
		if !ok || isDelimiter(c) {
			break // for loop
		}
		text = append(text, c)
	}

	tk.Text = string(text)
	return tk
}

// Get returns the next token in the stream. If the stream has ended then the
// end token is returned.
func (s *Stream) Get() Token {
	tk := s.lookahead
	if !tk.IsEnd() {
		s.lookahead = s.scan()
	}
	return tk
}

// Peek returns the next token in the stream without advancing the stream.
func (s *Stream) Peek() Token {
	return s.lookahead
}

// IsEnd returns true if there are no more tokens in the stream.
func (s *Stream) IsEnd() bool {
	return s.lookahead.IsEnd()
}

// Err returns the first error encountered while reading the input. Reaching
// the end of the input is not an error.
func (s *Stream) Err() error {
	return s.err
}
