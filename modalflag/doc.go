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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, where Parse() is called with the arguments, the
// arguments are given to NewArgs() and Parse() is called with no arguments.
// This allows successive calls to Parse() to consume the argument list one
// mode at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LINK", "SYMBOLS")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "SYMBOLS":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stderr")
//		p, err := md.Parse()
//		...
//		for _, f := range md.RemainingArgs() {
//			...
//		}
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. If the first
// argument after the flags is not a listed sub-mode then the default mode is
// selected and the argument is left in place for the next call to Parse().
//
// Sub-mode comparisons are case insensitive. Mode() always returns the
// upper-case name of the mode.
//
// The Output field must be set for help messages to be visible.
package modalflag
