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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/modlink/modalflag"
	"github.com/jetsetilly/modlink/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "a.txt", "b.txt"})
	logFlag := md.AddBool("log", false, "echo log")

	test.ExpectEquality(t, *logFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *logFlag, true)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "a.txt")
	test.ExpectEquality(t, md.GetArg(1), "b.txt")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown", "a.txt"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"a.txt", "b.txt"})
	md.AddSubModes("link", "symbols")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "LINK")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "a.txt")
}

func TestSelectedMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"symbols", "-log", "a.txt"})
	md.AddSubModes("LINK", "SYMBOLS")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SYMBOLS")

	md.NewMode()
	logFlag := md.AddBool("log", false, "echo log")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *logFlag, true)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "a.txt")
	test.ExpectEquality(t, md.Path(), "SYMBOLS")
}

func TestFlagForDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "a.txt"})
	md.AddSubModes("SYMBOLS", "LINK")

	// the top level does not know about -log so the default mode is chosen
	// and the flag is left for the next call to Parse()
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SYMBOLS")

	md.NewMode()
	logFlag := md.AddBool("log", false, "echo log")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *logFlag, true)
	test.ExpectEquality(t, md.GetArg(0), "a.txt")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
