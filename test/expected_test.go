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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/modlink/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, "A=0", fmt.Sprintf("%s=%d", "A", 0))
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))
	test.ExpectEquality(t, len(tw.Lines()), 0)

	fmt.Fprintf(tw, "Symbol Table\n")
	fmt.Fprintf(tw, "A=0\n")
	test.ExpectSuccess(t, tw.Compare("Symbol Table\nA=0\n"))

	l := tw.Lines()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "Symbol Table")
	test.ExpectEquality(t, l[1], "A=0")

	tw.Clear()
	test.ExpectEquality(t, tw.String(), "")
}
