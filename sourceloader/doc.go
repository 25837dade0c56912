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

// Package sourceloader is used to specify the linker source to be used for a
// link. The source is opened once for every pass of the linker with the Open()
// function. Every call to Open() returns a reader positioned at the start of
// the source.
//
// Sources are local files or data over HTTP. Local files are opened anew for
// every pass unless the data has already been loaded into memory with Load().
// HTTP sources are always loaded into memory on the first Open().
//
// The simplest instance of the Loader type:
//
//	ld := sourceloader.NewLoader("input-1")
//
// Sources that already exist in memory, for example in test files, can be
// created with NewLoaderFromData().
package sourceloader
