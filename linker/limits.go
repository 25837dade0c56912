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

package linker

// limits of the target machine and of the source format.
const (
	// number of addressable words in the machine. the total number of
	// instructions in a link can not exceed this value
	MachineSize = 512

	// maximum length of a symbol name
	MaxSymbolLength = 16

	// maximum number of entries in a definition list or in a use list
	MaxListLength = 16

	// instructions with an opcode larger than this are illegal
	MaxOpcode = 9

	// value substituted for an illegal instruction
	IllegalValue = 9999

	// instruction values are opcode * opcodeScale + operand
	opcodeScale = 1000
)
