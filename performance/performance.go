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
	"io"
	"time"

	"github.com/jetsetilly/modlink/curated"
	"github.com/jetsetilly/modlink/digest"
	"github.com/jetsetilly/modlink/linker"
	"github.com/jetsetilly/modlink/logger"
	"github.com/jetsetilly/modlink/sourceloader"
)

// Sentinel error returned by Check() if the output of a link is not the same
// as the output of the first link.
const DigestMismatch = "performance: link %d output differs from first link (%s)"

// Check the performance of the linker using the supplied source.
//
// The source will be linked repeatedly for the specified duration. A cpu and
// memory profile (or both) will be created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, ld sourceloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the source is loaded once so that file access is not measured
	err = ld.Load()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dig := digest.NewWriter()
	var expected string
	var numLinks int

	runner := func() error {
		timesUp := time.After(dur)
		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			// only the first link is logged. log entries from every link
			// would fill the log
			perm := logger.Deny
			if numLinks == 0 {
				perm = logger.Allow
			}

			dig.ResetDigest()
			ctx := linker.NewContext(perm)
			err := ctx.Link(dig, &ld)
			if err != nil {
				return curated.Errorf("performance: %v", err)
			}

			if numLinks == 0 {
				expected = dig.Hash()
				logger.Logf(logger.Allow, "performance", "%s: %d modules, %d instructions, digest %s",
					ld.ShortName(), len(ctx.Modules), len(ctx.MemoryMap), expected)
			} else if h := dig.Hash(); h != expected {
				return curated.Errorf(DigestMismatch, numLinks+1, h)
			}

			numLinks++
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	rate := CalcRate(numLinks, dur.Seconds())
	_, err = fmt.Fprintf(output, "%.2f links/sec (%d links in %.2f seconds)\n", rate, numLinks, dur.Seconds())
	return err
}

// CalcRate takes the the number of links and duration (in seconds) and returns
// the links-per-second.
func CalcRate(numLinks int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numLinks) / duration
}
