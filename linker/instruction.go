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

import "fmt"

// Mode is the addressing mode of an instruction.
type Mode byte

// List of valid Mode values.
const (
	Absolute  Mode = 'A'
	External  Mode = 'E'
	Immediate Mode = 'I'
	Relative  Mode = 'R'
)

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts the text of a token to a Mode.
func ParseMode(s string) (Mode, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch m := Mode(s[0]); m {
	case Absolute, External, Immediate, Relative:
		return m, true
	}
	return 0, false
}

// Instruction is an unrelocated instruction as it appears in the source.
type Instruction struct {
	Mode  Mode
	Value int
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s %04d", ins.Mode, ins.Value)
}

// Opcode part of the instruction value.
func (ins Instruction) Opcode() int {
	return ins.Value / opcodeScale
}

// Operand part of the instruction value.
func (ins Instruction) Operand() int {
	return ins.Value % opcodeScale
}
