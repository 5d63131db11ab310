// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"github.com/scclang/scc/internal/compiler/ctypes"
)

// Temporary returns a fresh slot of the given type for intermediate
// values.  Temporaries bypass scoping and merging entirely; give them back
// with Discard when the containing function is compiled.
func (t *Table) Temporary(typ *ctypes.Type) *Symbol {
	sym := t.pool.get()
	sym.Kind = Definition
	sym.Linkage = LinkNone
	sym.Name = prefixTemporary
	sym.Type = typ
	t.temps++
	sym.N = t.temps
	return sym
}

// Unnamed returns an anonymous object, e.g. backing a compound literal.
// At file scope it gets internal linkage and thus static storage.  The
// symbol joins the identifier master list so it lives until the end of the
// translation unit, but it is never visible to Lookup.
func (t *Table) Unnamed(typ *ctypes.Type) *Symbol {
	sym := t.pool.get()
	if t.Identifiers.Depth() == 0 {
		sym.Linkage = LinkIntern
	} else {
		sym.Linkage = LinkNone
	}
	sym.Kind = Definition
	sym.Name = prefixUnnamed
	sym.Type = typ
	t.unnamed++
	sym.N = t.unnamed
	t.Identifiers.symbols = append(t.Identifiers.symbols, sym)
	return sym
}

// Constant returns a symbol holding a numeric literal.
func (t *Table) Constant(typ *ctypes.Type, val Value) *Symbol {
	sym := t.pool.get()
	sym.Kind = Constant
	sym.Linkage = LinkIntern
	sym.Name = prefixConstant
	sym.Type = typ
	sym.Const = val
	t.consts++
	sym.N = t.consts
	t.Identifiers.symbols = append(t.Identifiers.symbols, sym)
	return sym
}

// StringLiteral returns a symbol for a string literal, as if declared
// static char .LC[] = "...".  The byte content is interned in the session
// string arena and referenced by handle; the declared type is an array of
// char sized for the bytes plus the null terminator.
func (t *Table) StringLiteral(s string) *Symbol {
	sym := t.pool.get()
	sym.Kind = StringValue
	sym.Linkage = LinkIntern
	sym.Name = prefixString
	sym.Type = ctypes.ArrayOf(ctypes.CChar, len(s)+1)
	sym.Str = t.names.Intern(s)
	t.strs++
	sym.N = t.strs
	t.Identifiers.symbols = append(t.Identifiers.symbols, sym)
	return sym
}

// Label returns a fresh jump target for compiler generated control flow.
// Like temporaries, generated labels bypass scoping; discard them with the
// function.
func (t *Table) Label() *Symbol {
	sym := t.pool.get()
	sym.Kind = Label
	sym.Linkage = LinkIntern
	sym.Name = prefixLabel
	sym.Type = ctypes.CVoid
	t.genLabels++
	sym.N = t.genLabels
	return sym
}

// Discard returns a generated symbol to the recycling pool.  The record
// must not be used afterwards; the next allocation may reuse it.
func (t *Table) Discard(sym *Symbol) {
	t.pool.put(sym)
}
