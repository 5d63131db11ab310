// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"github.com/golang/glog"
	"github.com/scclang/scc/internal/compiler/ctypes"
)

// applyType merges a re-declared type into sym.  Only functions and arrays
// can exist as incomplete; everything else must re-declare the identical
// type.  For functions, the last parameter list is applied for as long as
// the symbol is not yet defined, so the definition binds the final
// parameter names.
func (t *Table) applyType(sym *Symbol, typ *ctypes.Type) {
	if ctypes.Equal(sym.Type, typ) &&
		!(ctypes.IsFunction(sym.Type) && sym.Kind != Definition) {
		return
	}

	conflict := true
	switch {
	case ctypes.IsFunction(sym.Type):
		if ctypes.IsFunction(typ) && ctypes.Equal(sym.Type.Next, typ.Next) {
			// A prototype may complete a declaration that had none.
			conflict = sym.Type.NMembers() != 0 &&
				sym.Type.NMembers() != typ.NMembers()
			if !conflict {
				sym.Type = typ
			}
		}
	case ctypes.IsArray(sym.Type):
		if ctypes.IsArray(typ) && ctypes.Equal(sym.Type.Next, typ.Next) {
			conflict = false
			if sym.Type.SizeOf() == 0 && typ.SizeOf() != 0 {
				sym.Type.SetArrayLength(typ.Len())
			}
		}
	}

	if conflict {
		t.reporter.Fatalf("Incompatible declaration of %s :: %s, cannot apply type '%s'.",
			sym.Name, sym.Type, typ)
	}
}

// Declare adds a declaration of name to the namespace, merging it with
// previous declarations of the same identifier per C rules.  The returned
// symbol is the canonical record for the name; several declarations may
// share it.  Conflicts are fatal through the session reporter.
//
// The rules are ordered; the first match wins:
//
//  1. With no visible symbol, a function type consults the session-wide
//     function index, so forward declarations from inner scopes land on
//     the one true symbol.
//  2. An extern declaration completes an existing tentative definition or
//     definition, wherever it appears.
//  3. At file scope, re-declarations merge: tentative and definition
//     combine to definition, declaration upgrades to tentative, and a
//     definition tolerates a matching declaration.  Mismatched kind or
//     linkage is an error.
//  4. In any inner scope, a name may only be declared once.
//  5. Otherwise the declaration shadows whatever an outer scope holds.
func (n *Namespace) Declare(name string, typ *ctypes.Type, kind Kind, linkage Linkage) *Symbol {
	t := n.table
	if kind == Label {
		panic("symbol: label declared through Declare")
	}
	if kind == Tag && n != t.Tags {
		panic("symbol: tag declared outside the tag namespace")
	}
	if n.depth == 0 {
		panic("symbol: Declare with no active scope in namespace " + n.name)
	}
	name = t.canon(name)

	// String values (__func__ and friends) never merge with anything.
	var sym *Symbol
	if kind != StringValue {
		sym = n.Lookup(name)
		if sym == nil && ctypes.IsFunction(typ) && n == t.Identifiers {
			if i, ok := t.funcs[name]; ok {
				sym = n.symbols[i]
				t.applyType(sym, typ)
				n.makeVisible(sym)
				if d := n.Depth(); d < sym.Depth {
					sym.Depth = d
				}
				return sym
			}
		}
	}

	if sym != nil {
		switch {
		case linkage == LinkExtern && kind == Declaration &&
			(sym.Kind == Tentative || sym.Kind == Definition):
			t.applyType(sym, typ)
			return sym
		case sym.Depth == n.Depth() && sym.Depth == 0:
			switch {
			case sym.Linkage == linkage &&
				((sym.Kind == Tentative && kind == Definition) ||
					(sym.Kind == Definition && kind == Tentative)):
				t.applyType(sym, typ)
				sym.Kind = Definition
			case sym.Linkage == linkage &&
				sym.Kind == Declaration && kind == Tentative:
				t.applyType(sym, typ)
				sym.Kind = Tentative
			case sym.Linkage == linkage &&
				sym.Kind == Definition && kind == Declaration:
				if !ctypes.Equal(sym.Type, typ) {
					t.reporter.Fatalf("Conflicting types for %s.", name)
				}
			case sym.Kind != kind || sym.Linkage != linkage:
				t.reporter.Fatalf("Declaration of '%s' does not match prior declaration.", name)
			default:
				t.applyType(sym, typ)
			}
			return sym
		case sym.Depth == n.Depth():
			t.reporter.Fatalf("Duplicate definition of symbol '%s'.", name)
			return sym
		}
	}

	// New symbol, shadowing any declaration from an outer scope.
	sym = t.pool.get()
	sym.Depth = n.Depth()
	sym.Name = name
	sym.Type = typ
	sym.Kind = kind
	sym.Linkage = linkage

	// Scoped statics get unique emission names, to not collide with other
	// declarations of the same identifier.
	if linkage == LinkIntern && sym.Depth > 0 {
		t.statics++
		sym.N = t.statics
	}

	if kind == Tag || kind == Typedef {
		typ.SetTag(name)
	}

	n.symbols = append(n.symbols, sym)
	n.makeVisible(sym)
	if ctypes.IsFunction(sym.Type) && n == t.Identifiers {
		t.funcs[name] = len(n.symbols) - 1
	}

	glog.V(2).Infof("\t[type: %s, link: %s]\n\t%s :: %s",
		sym.Kind, sym.Linkage, sym.EmitName(), sym.Type)
	return sym
}
