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
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/modlink/linker"
	"github.com/jetsetilly/modlink/logger"
	"github.com/jetsetilly/modlink/modalflag"
	"github.com/jetsetilly/modlink/performance"
	"github.com/jetsetilly/modlink/sourceloader"
	"github.com/jetsetilly/modlink/statsview"
	"github.com/jetsetilly/modlink/version"
)

// exit values returned by launch().
const (
	exitOK         = 0
	exitParseError = 1
	exitArgsError  = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. the report of every
// mode is written to stdout. returns the exit value for the program.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LINK", "SYMBOLS", "PERFORMANCE", "GRAPH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgsError
	}

	switch md.Mode() {
	case "LINK":
		err = link(md, stderr)

	case "SYMBOLS":
		err = symbolTable(md, stderr)

	case "PERFORMANCE":
		err = perform(md, stderr)

	case "GRAPH":
		err = graph(md, stderr)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		// the parse error is part of the report
		if linker.IsParseError(err) {
			fmt.Fprintln(stdout, err)
			return exitParseError
		}

		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// setEcho turns log echoing on or off. echoed entries are colorized if stderr
// is a terminal.
func setEcho(log bool, stderr io.Writer) {
	if !log {
		logger.SetEcho(nil)
		return
	}
	if f, ok := stderr.(*os.File); ok {
		logger.SetEcho(logger.EchoWriter(f))
	} else {
		logger.SetEcho(stderr)
	}
}

// linkFiles runs the link function for every remaining argument. sources that
// cannot be read are reported to stderr and skipped. a parse error ends the
// run immediately.
func linkFiles(md *modalflag.Modes, stderr io.Writer,
	fn func(io.Writer, *sourceloader.Loader) (*linker.Context, error)) error {

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one source file required for %s mode", md)
	}

	for _, filename := range md.RemainingArgs() {
		ld := sourceloader.NewLoader(filename)
		_, err := fn(md.Output, &ld)
		if err != nil {
			if linker.IsParseError(err) {
				return err
			}
			fmt.Fprintf(stderr, "* %v\n", err)
		}
	}

	_, err := io.WriteString(md.Output, "\n")
	return err
}

func link(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(false, stderr)

	return linkFiles(md, stderr, linker.Link)
}

func symbolTable(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo linker log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, stderr)

	return linkFiles(md, stderr, linker.Symbols)
}

func perform(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "produce profiling reports: cpu, mem, both")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo linker log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, stderr)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(stderr)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source file required for %s mode", md)
	case 1:
		ld := sourceloader.NewLoader(md.GetArg(0))
		err = performance.Check(md.Output, prf, ld, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func graph(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()

	output := md.AddString("o", "", "write graph to file (default stdout)")
	log := md.AddBool("log", false, "echo linker log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, stderr)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source file required for %s mode", md)
	case 1:
		ld := sourceloader.NewLoader(md.GetArg(0))
		ctx, err := linker.Link(io.Discard, &ld)
		if err != nil {
			return err
		}

		w := md.Output
		if *output != "" {
			f, err := os.Create(*output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		memviz.Map(w, ctx)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, err = fmt.Fprintln(md.Output, version.Version())
	return err
}
