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

import (
	"fmt"
	"sort"
)

// useList is the ordered list of external symbols a module may refer to.
type useList struct {
	names []string

	// whether the name has been referenced by an instruction in the module.
	// names can appear in the list more than once and share the flag
	referenced map[string]bool
}

func newUseList(n int) *useList {
	return &useList{
		names:      make([]string, 0, n),
		referenced: make(map[string]bool, n),
	}
}

func (u *useList) add(name string) {
	u.names = append(u.names, name)
	u.referenced[name] = false
}

// lookup the name at index and mark it as referenced.
func (u *useList) lookup(index int) (string, bool) {
	if index >= len(u.names) {
		return "", false
	}
	name := u.names[index]
	u.referenced[name] = true
	return name, true
}

// unreferenced returns the names that have not been referenced, in name
// order. each name appears only once.
func (u *useList) unreferenced() []string {
	var names []string
	for n, ok := range u.referenced {
		if !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// relocate resolves a single instruction. the Index field of the returned
// Relocation is not set.
func (ctx *Context) relocate(ins Instruction, mod Module, uses *useList) Relocation {
	rel := Relocation{
		Module:      mod.Index,
		Instruction: ins,
		Value:       ins.Value,
	}

	opcode := ins.Opcode()
	operand := ins.Operand()

	if opcode > MaxOpcode {
		rel.Value = IllegalValue
		if ins.Mode == Immediate {
			rel.Warning = "Illegal immediate value; treated as 9999"
		} else {
			rel.Warning = "Illegal opcode; treated as 9999"
		}
		return rel
	}

	switch ins.Mode {
	case Immediate:

	case Absolute:
		if operand > MachineSize {
			rel.Value = opcode * opcodeScale
			rel.Warning = "Absolute address exceeds machine size; zero used"
		}

	case Relative:
		if operand > mod.Count {
			rel.Value = opcode*opcodeScale + mod.Base
			rel.Warning = "Relative address exceeds module size; zero used"
		} else {
			rel.Value = opcode*opcodeScale + operand + mod.Base
		}

	case External:
		name, ok := uses.lookup(operand)
		if !ok {
			rel.Warning = "External address exceeds length of uselist; treated as immediate"
			break
		}

		sym, ok := ctx.Symbols.Lookup(name)
		if !ok {
			rel.Value = opcode * opcodeScale
			rel.Warning = fmt.Sprintf("%s is not defined; zero used", name)
			break
		}

		sym.Uses++
		rel.Value = opcode*opcodeScale + sym.Address
	}

	return rel
}
