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

// Pass1 reads the source and builds the symbol table and module list. No
// instructions are resolved.
func (ctx *Context) Pass1(r io.Reader) error {
	if ctx.pass1 {
		return curated.Errorf("linker: first pass has already been run")
	}

	rd := newReader(tokeniser.NewStream(r))
	base := 0

	for index := 1; !rd.IsEnd(); index++ {
		count, err := ctx.module1(rd, index, base)
		if err != nil {
			return err
		}

		mod := Module{Index: index, Base: base, Count: count}
		ctx.Modules = append(ctx.Modules, mod)
		logger.Logf(ctx.Log, "linker", "pass 1: %s", mod)

		base += count
	}

	if err := rd.Err(); err != nil {
		return curated.Errorf("linker: %v", err)
	}

	ctx.pass1 = true
	logger.Logf(ctx.Log, "linker", "pass 1: %d modules, %d symbols", len(ctx.Modules), ctx.Symbols.Len())

	return nil
}

// module1 reads a single module during the first pass. returns the number of
// instructions in the module.
func (ctx *Context) module1(rd reader, index int, base int) (int, error) {
	n, err := rd.readCount(TooManyDefInModule)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		name, rel, err := rd.readDefinition()
		if err != nil {
			return 0, err
		}
		if _, ok := ctx.Symbols.Define(name, index, base, rel); !ok {
			logger.Logf(ctx.Log, "linker", "pass 1: %s redefined in module %d", name, index)
		}
	}

	// the use list is only read for its position in the source
	n, err = rd.readCount(TooManyUseInModule)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if _, err := rd.readSymbol(); err != nil {
			return 0, err
		}
	}

	count, err := rd.readCodeCount(base)
	if err != nil {
		return 0, err
	}
	for i := 0; i < count; i++ {
		if _, err := rd.readInstruction(); err != nil {
			return 0, err
		}
	}

	// symbols defined beyond the end of the module point to the start of the
	// module instead
	for _, sym := range ctx.Symbols.DefinedIn(index) {
		if sym.Relative >= count {
			ctx.warnings = append(ctx.warnings, fmt.Sprintf("Warning: Module %d: %s too big %d (max=%d) assume zero relative",
				index, sym.Name, sym.Relative, count-1))
			sym.ZeroRelative()
		}
	}

	return count, nil
}
