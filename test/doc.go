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

// Package test contains helper functions to remove common boilerplate from
// the project's test files.
//
// The Expect*() functions test for failure, success and equality and report
// a test error without stopping the test. The Demand*() functions are the
// same except that the test is stopped immediately on failure. Demand*()
// functions are useful when the value being tested is used in further tests.
//
// How the Expect/Demand functions interpret success and failure depends on
// the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// All functions accept an optional list of tags. Tags are printed at the
// beginning of any failure message and can be used to identify a failing
// iteration in a table driven test.
//
// The CompareWriter type implements the io.Writer interface and is useful for
// capturing the output of functions that write to an io.Writer.
package test
