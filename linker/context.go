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
	"io"

	"github.com/jetsetilly/modlink/logger"
	"github.com/jetsetilly/modlink/symbols"
)

// Module records the placement of a module in the address space.
type Module struct {
	// modules count from one
	Index int

	// address of the first instruction in the module
	Base int

	// number of instructions in the module
	Count int
}

func (mod Module) String() string {
	return fmt.Sprintf("module %d: base %d, %d instructions", mod.Index, mod.Base, mod.Count)
}

// Relocation is an instruction after it has been resolved by the second pass.
type Relocation struct {
	// position of the instruction in the memory map
	Index int

	// the module the instruction belongs to
	Module int

	Instruction Instruction

	// the relocated value
	Value int

	// empty if there was no problem with the instruction
	Warning string
}

func (rel Relocation) String() string {
	if rel.Warning == "" {
		return fmt.Sprintf("%03d: %04d", rel.Index, rel.Value)
	}
	return fmt.Sprintf("%03d: %04d Error: %s", rel.Index, rel.Value, rel.Warning)
}

// Context is the state of a single link. It should not be reused for another
// link.
type Context struct {
	// the global symbol table built by the first pass
	Symbols *symbols.Table

	// every module in the order they appear in the source. decided by the
	// first pass
	Modules []Module

	// every instruction in the order they appear in the source. created by
	// the second pass
	MemoryMap []Relocation

	// permission for log entries made by the linker
	Log logger.Permission

	// warnings raised by the first pass. written before the symbol table
	warnings []string

	// whether each pass has completed successfully
	pass1 bool
	pass2 bool
}

// NewContext is the preferred method of initialisation for the Context type.
// Log entries made during the link are subject to the Permission argument.
func NewContext(perm logger.Permission) *Context {
	return &Context{
		Symbols: symbols.NewTable(),
		Log:     perm,
	}
}

// Size returns the number of instructions in the link.
func (ctx *Context) Size() int {
	if len(ctx.Modules) == 0 {
		return 0
	}
	mod := ctx.Modules[len(ctx.Modules)-1]
	return mod.Base + mod.Count
}

// Warnings returns the warnings raised by the first pass.
func (ctx *Context) Warnings() []string {
	return ctx.warnings
}

// WriteSymbolTable outputs the warnings raised by the first pass followed by
// the symbol table.
func (ctx *Context) WriteSymbolTable(output io.Writer) error {
	for _, w := range ctx.warnings {
		if _, err := io.WriteString(output, w+"\n"); err != nil {
			return err
		}
	}
	return ctx.Symbols.WriteReport(output)
}
