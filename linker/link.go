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
	"bytes"
	"io"

	"github.com/jetsetilly/modlink/logger"
	"github.com/jetsetilly/modlink/sourceloader"
)

// pass opens the source, runs the pass function and closes the source again
// regardless of the outcome of the pass.
func pass(ld *sourceloader.Loader, fn func(r io.Reader) error) error {
	r, err := ld.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	return fn(r)
}

// Link runs both passes over the source and writes the symbol table and memory
// map to the output.
//
// Nothing is written to the output if an error is returned. The Context is
// returned in all cases and can be inspected for the state of the link at the
// point of the error.
func Link(output io.Writer, ld *sourceloader.Loader) (*Context, error) {
	ctx := NewContext(logger.Allow)
	return ctx, ctx.Link(output, ld)
}

// Link runs both passes over the source using an existing Context. The
// Context must not have been used for a previous link.
func (ctx *Context) Link(output io.Writer, ld *sourceloader.Loader) error {
	buf := &bytes.Buffer{}

	logger.Logf(ctx.Log, "linker", "linking %s", ld.ShortName())

	err := pass(ld, ctx.Pass1)
	if err != nil {
		logger.Logf(ctx.Log, "linker", "%s: %v", ld.ShortName(), err)
		return err
	}

	err = ctx.WriteSymbolTable(buf)
	if err != nil {
		return err
	}

	err = pass(ld, func(r io.Reader) error {
		return ctx.Pass2(r, buf)
	})
	if err != nil {
		logger.Logf(ctx.Log, "linker", "%s: %v", ld.ShortName(), err)
		return err
	}

	_, err = buf.WriteTo(output)
	return err
}

// Symbols runs the first pass only and writes the symbol table to the output.
// As with Link() nothing is written if an error is returned.
func Symbols(output io.Writer, ld *sourceloader.Loader) (*Context, error) {
	ctx := NewContext(logger.Allow)
	buf := &bytes.Buffer{}

	err := pass(ld, ctx.Pass1)
	if err != nil {
		return ctx, err
	}

	err = ctx.WriteSymbolTable(buf)
	if err != nil {
		return ctx, err
	}

	_, err = buf.WriteTo(output)
	return ctx, err
}
