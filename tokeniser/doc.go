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

// Package tokeniser divides a linker source into whitespace delimited tokens.
// Every token records the line and offset at which it begins. Lines and
// offsets both count from one.
//
// The Stream type holds one token of lookahead. This means that IsEnd() is
// true as soon as the last token has been returned by Get() and not when the
// next call to Get() fails. Once the stream has ended, Get() returns the empty
// token, positioned at the end of the input, for every subsequent call.
//
// A stream is a single traversal of the source. Traversing the source again
// requires a new Stream with a new reader.
package tokeniser
