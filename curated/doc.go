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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the pattern string is
// kept with the error so that it can be tested for later:
//
//	e := curated.Errorf("sourceloader: %s: %v", filename, err)
//
//	if curated.Is(e, "sourceloader: %s: %v") {
//		fmt.Println("source could not be loaded")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the chain of curated errors:
//
//	f := curated.Errorf("performance: %v", e)
//
//	if curated.Has(f, "sourceloader: %s: %v") {
//		fmt.Println("true")
//	}
//
// IsAny() answers whether the error was created by curated.Errorf(). Errors
// that are not curated are generally unexpected errors, raised by the
// standard library or by a third-party package.
//
// The Error() implementation removes duplicate adjacent parts from the
// message. Chains are thought of as being composed of parts separated by a
// colon and a space:
//
//	part 1: part 2: part 3
//
// If part 1 and part 2 are identical then only one of them is printed.
//
// A curated error that wraps a plain error as one of its values can be
// unwrapped with errors.Unwrap(), which means that errors.Is() will find
// sentinal errors such as fs.ErrNotExist.
package curated
