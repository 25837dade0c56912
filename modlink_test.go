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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/modlink/test"
)

// writeSource creates a source file in a temporary directory.
func writeSource(t *testing.T, name string, source string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fn, []byte(source), 0o644)
	test.DemandSuccess(t, err)
	return fn
}

func TestLink(t *testing.T) {
	a := writeSource(t, "a.txt", "1 A 0 0 1 I 1000\n")
	b := writeSource(t, "b.txt", "0 1 X 1 E 1000\n")

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	test.ExpectEquality(t, launch([]string{a, b}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.String(), `Symbol Table
A=0

Memory Map
000: 1000

Warning: Module 1: A was defined but never used
Symbol Table

Memory Map
000: 1000 Error: X is not defined; zero used


`)
	test.ExpectEquality(t, stderr.String(), "")

	// LINK is the default mode but can be given explicitly
	stdout.Clear()
	test.ExpectEquality(t, launch([]string{"link", a}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.Lines()[0], "Symbol Table")
}

func TestLinkParseError(t *testing.T) {
	a := writeSource(t, "a.txt", "1 A 0 0 1 I 1000\n")
	b := writeSource(t, "b.txt", "0 0 1 B 1000\n")

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	// the first file is reported in full and the second file only with the
	// error. the third file is never linked
	test.ExpectEquality(t, launch([]string{a, b, a}, stdout, stderr), exitParseError)
	test.ExpectEquality(t, stdout.String(), `Symbol Table
A=0

Memory Map
000: 1000

Warning: Module 1: A was defined but never used
Parse Error line 1 offset 7: ADDR_EXPECTED
`)
}

func TestLinkUnreadable(t *testing.T) {
	a := writeSource(t, "a.txt", "0 0 1 I 1000\n")

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	missing := filepath.Join(t.TempDir(), "missing.txt")
	test.ExpectEquality(t, launch([]string{missing, a}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.String(), "Symbol Table\n\nMemory Map\n000: 1000\n\n\n")
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "missing.txt"))
}

func TestSymbolsMode(t *testing.T) {
	a := writeSource(t, "a.txt", "2 X 5 Y 0 0 2 I 1000 I 2000\n")

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	test.ExpectEquality(t, launch([]string{"symbols", a}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.String(), `Warning: Module 1: X too big 5 (max=1) assume zero relative
Symbol Table
X=0
Y=0


`)
}

func TestArguments(t *testing.T) {
	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	// no files
	test.ExpectEquality(t, launch([]string{}, stdout, stderr), exitModeError)

	// unknown flag for the mode
	test.ExpectEquality(t, launch([]string{"link", "-unknown", "a.txt"}, stdout, stderr), exitModeError)

	// performance mode takes one file only
	test.ExpectEquality(t, launch([]string{"performance", "a.txt", "b.txt"}, stdout, stderr), exitModeError)

	// unknown profile type
	test.ExpectEquality(t, launch([]string{"performance", "-profile", "trace", "a.txt"}, stdout, stderr), exitModeError)
}

func TestGraph(t *testing.T) {
	a := writeSource(t, "a.txt", "1 A 0 0 1 I 1000\n0 1 A 1 E 1000\n")
	out := filepath.Join(t.TempDir(), "graph.dot")

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	test.ExpectEquality(t, launch([]string{"graph", "-o", out, a}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.String(), "")

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "digraph"))
}

func TestVersion(t *testing.T) {
	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	test.ExpectEquality(t, launch([]string{"version"}, stdout, stderr), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), "Modlink "))
}

func TestFileNamedLikeMode(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "symbols"), []byte("1 A 0 0 1 I 1000\n"), 0o644)
	test.DemandSuccess(t, err)

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
	})

	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	// the first argument is taken as the mode and there are no files
	test.ExpectEquality(t, launch([]string{"symbols"}, stdout, stderr), exitModeError)
	test.ExpectEquality(t, stdout.String(), "")

	// naming the mode explicitly allows the file to be linked
	stderr.Clear()
	test.ExpectEquality(t, launch([]string{"link", "symbols"}, stdout, stderr), exitOK)
	test.ExpectEquality(t, stdout.String(), `Symbol Table
A=0

Memory Map
000: 1000

Warning: Module 1: A was defined but never used

`)
	test.ExpectEquality(t, stderr.String(), "")
}
