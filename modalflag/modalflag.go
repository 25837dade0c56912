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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc).
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the number of arguments consumed by the most recent Parse() and the
	// arguments that remain for the next mode
	consumed  int
	remaining []string

	// the most recent list of sub-modes specified with AddSubModes(). the
	// first entry is the default
	subModes []string

	// the series of sub-modes found during calls to Parse(). never reset
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	// arguments consumed by the previous mode are not seen by the new mode
	md.argsIdx += md.consumed
	md.consumed = 0
	md.remaining = nil

	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified
	// then the Mode() function should be checked.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the top level layer of arguments. Help messages are handled
// automatically by the function. ParseHelp should be treated similarly to an
// error, without the need to display anything further to the user.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	args := md.args[md.argsIdx:]

	err := md.flags.Parse(args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes)
			return ParseHelp, nil
		}

		// flags not recognised at this level may be recognised by the
		// default sub-mode. nothing is consumed in that case
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		md.consumed = 0
		md.remaining = args

		return ParseContinue, nil
	}

	md.remaining = md.flags.Args()
	md.consumed = len(args) - len(md.remaining)

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.remaining = md.remaining[1:]
				md.consumed++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
