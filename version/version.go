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

// Package version reports the version of the linker. The version number is
// set at build time with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/modlink/version.number=v0.1.0"
//
// Without a version number the build information is used to describe the
// build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Modlink"

// set by the build process. empty if the build process did not set it
var number string

// Info describes the build of the linker.
type Info struct {
	// version number or "unreleased" for a build from a repository without a
	// version number or "local" if there is no information at all
	Version string

	// vcs revision. suffixed with "+dirty" if the source has been modified
	// since the revision
	Revision string

	// true if the version is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns information about the current build.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	return describe(number, info)
}

func describe(number string, info *debug.BuildInfo) Info {
	var vcs bool
	var modified bool
	var revision string

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{
		Version:  number,
		Revision: revision,
		Release:  number != "",
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}
