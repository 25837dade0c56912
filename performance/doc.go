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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the linker repeatedly for a fixed
// duration of time. It will optionally generate profiling information. The
// output of every link is hashed and compared with the output of the first
// link. Any difference is an error because a link should never depend on
// anything other than the source.
//
// RunProfiler() can be used to generate the various profile types. On it's own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations
//
// CalcRate() calculates links-per-second in aggregate.
package performance
