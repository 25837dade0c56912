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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/modlink/curated"
)

// Profile specifies which profiles should be created by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileBoth         = ProfileCPU | ProfileMem
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	case ProfileBoth:
		return "both"
	}
	return fmt.Sprintf("unknown profile (%d)", int(p))
}

// ParseProfile converts a string, probably from the command line, to a Profile
// value. The empty string is the same as "none".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "both":
		return ProfileBoth, nil
	}
	return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", s)
}

// RunProfiler runs the supplied function and creates the profiles specified by
// the Profile argument. The filename prefix is used to name the profile
// files.
func RunProfiler(profile Profile, filenamePrefix string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenamePrefix))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenamePrefix))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
