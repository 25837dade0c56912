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

// Package linker is a two-pass linker for module based object sources.
//
// A source is a sequence of modules. Every module has a definition list, a use
// list and an instruction list:
//
//	module := defcount (symbol value){defcount}
//	          usecount (symbol){usecount}
//	          codecount (mode value){codecount}
//
// The first pass builds the global symbol table and decides the base address
// of every module. The base address of a module is the sum of the instruction
// counts of all preceding modules. The second pass traverses the source again
// and relocates every instruction according to its addressing mode:
//
//	A	absolute address
//	E	external reference, operand indexes the use list of the module
//	I	immediate value
//	R	address relative to the start of the module
//
// The simplest way of linking a source is the Link() function, which runs both
// passes and writes the symbol table and the memory map to an io.Writer. A
// fresh Context is created for every call to Link() so there is no state shared
// between links.
//
// Fatal errors in the source are returned as a ParseError. Semantic problems
// are not errors. They are written as warnings alongside the symbol table or
// memory map and the link continues with a substitute value.
package linker
