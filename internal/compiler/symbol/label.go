// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"github.com/scclang/scc/internal/compiler/ctypes"
)

// DeclareLabel returns the symbol for a named goto target, creating it as
// tentative on first sight.  The defining statement may come later in the
// function; a label still tentative when the function's label scope pops
// was never defined.
func (t *Table) DeclareLabel(name string) *Symbol {
	n := t.Labels
	if n.depth == 0 {
		panic("symbol: DeclareLabel with no active label scope")
	}
	name = t.canon(name)
	if sym := n.Lookup(name); sym != nil {
		return sym
	}
	sym := t.pool.get()
	sym.Depth = n.Depth()
	sym.Name = name
	sym.Type = ctypes.CVoid
	sym.Kind = Tentative
	sym.Linkage = LinkIntern
	n.symbols = append(n.symbols, sym)
	n.makeVisible(sym)
	return sym
}

// DefineLabel records the statement `name:`, completing any tentative use
// from an earlier goto.  Defining the same label twice in one function is
// fatal.
func (t *Table) DefineLabel(name string) *Symbol {
	name = t.canon(name)
	sym := t.Labels.Lookup(name)
	if sym == nil {
		sym = t.DeclareLabel(name)
	} else if sym.Kind == Label {
		t.reporter.Fatalf("Duplicate definition of label '%s'.", name)
		return sym
	}
	sym.Kind = Label
	return sym
}
