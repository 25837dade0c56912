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

	"github.com/jetsetilly/modlink/curated"
	"github.com/jetsetilly/modlink/logger"
	"github.com/jetsetilly/modlink/tokeniser"
)

// Sentinel error returned when the second pass does not agree with the module
// list built by the first pass. This can only happen if the source changes
// between the two passes.
const ModuleMismatch = "linker: module %d does not match first pass (%s)"

// Pass2 reads the source a second time, relocating every instruction and
// writing the memory map and usage warnings to the output.
func (ctx *Context) Pass2(r io.Reader, output io.Writer) error {
	if !ctx.pass1 {
		return curated.Errorf("linker: second pass requires the first pass")
	}
	if ctx.pass2 {
		return curated.Errorf("linker: second pass has already been run")
	}

	rd := newReader(tokeniser.NewStream(r))
	base := 0

	if _, err := io.WriteString(output, "Memory Map\n"); err != nil {
		return err
	}

	for index := 1; !rd.IsEnd(); index++ {
		if index > len(ctx.Modules) {
			return curated.Errorf(ModuleMismatch, index, "unexpected module")
		}

		mod := ctx.Modules[index-1]
		if mod.Base != base {
			return curated.Errorf(ModuleMismatch, index, "base address")
		}

		count, err := ctx.module2(rd, mod, output)
		if err != nil {
			return err
		}
		if count != mod.Count {
			return curated.Errorf(ModuleMismatch, index, "instruction count")
		}

		base += count
	}

	if err := rd.Err(); err != nil {
		return curated.Errorf("linker: %v", err)
	}

	if _, err := io.WriteString(output, "\n"); err != nil {
		return err
	}

	for _, sym := range ctx.Symbols.Unused() {
		if _, err := fmt.Fprintf(output, "Warning: Module %d: %s was defined but never used\n", sym.Module, sym.Name); err != nil {
			return err
		}
	}

	ctx.pass2 = true
	logger.Logf(ctx.Log, "linker", "pass 2: %d instructions relocated", len(ctx.MemoryMap))

	return nil
}

// module2 reads and relocates a single module during the second pass.
// returns the number of instructions in the module.
func (ctx *Context) module2(rd reader, mod Module, output io.Writer) (int, error) {
	// definitions were dealt with by the first pass
	n, err := rd.readCount(TooManyDefInModule)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if _, _, err := rd.readDefinition(); err != nil {
			return 0, err
		}
	}

	n, err = rd.readCount(TooManyUseInModule)
	if err != nil {
		return 0, err
	}
	uses := newUseList(n)
	for i := 0; i < n; i++ {
		name, err := rd.readSymbol()
		if err != nil {
			return 0, err
		}
		uses.add(name)
	}

	count, err := rd.readCodeCount(mod.Base)
	if err != nil {
		return 0, err
	}

	// the base of the module comes from the first pass but the count is the
	// count being read now. a mismatch is caught by the caller
	mod.Count = count

	for i := 0; i < count; i++ {
		ins, err := rd.readInstruction()
		if err != nil {
			return 0, err
		}

		rel := ctx.relocate(ins, mod, uses)
		rel.Index = len(ctx.MemoryMap)
		ctx.MemoryMap = append(ctx.MemoryMap, rel)

		if rel.Warning != "" {
			logger.Logf(ctx.Log, "linker", "pass 2: %s: %s", ins, rel.Warning)
		}

		if _, err := io.WriteString(output, rel.String()+"\n"); err != nil {
			return 0, err
		}
	}

	for _, name := range uses.unreferenced() {
		if _, err := fmt.Fprintf(output, "Warning: Module %d: %s appeared in the uselist but was not actually used\n", mod.Index, name); err != nil {
			return 0, err
		}
	}

	return count, nil
}
