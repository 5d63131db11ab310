// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"github.com/golang/glog"
)

// A Namespace is an independent region of declarations.  C has three:
// ordinary identifiers, goto labels, and struct/union/enum tags.  Names
// never collide across namespaces.
type Namespace struct {
	name  string
	table *Table

	// frames grows to the deepest nesting ever seen and is never shrunk
	// until teardown; depth is the count of active frames.  Sibling
	// blocks at one nesting level therefore share a single frame.
	frames []*scope
	depth  int

	// symbols is the master list in declaration order.  It owns every
	// scoped symbol until the outermost scope pops.
	symbols []*Symbol

	// cursor is the NextDeclaration iteration position.
	cursor int
}

func newNamespace(name string, t *Table) *Namespace {
	return &Namespace{name: name, table: t}
}

// PushScope enters a lexical scope.  A frame left behind by a sibling
// block is reused and marked for lazy clearing on first insert.
func (n *Namespace) PushScope() {
	if n.depth < len(n.frames) {
		n.depth++
		s := n.frames[n.depth-1]
		if s.state == scopeReady {
			s.state = scopeDirty
		}
	} else {
		n.depth++
		n.frames = append(n.frames, &scope{state: scopeCreated})
	}
	glog.V(2).Infof("Entered %s scope at depth %d", n.name, n.depth-1)
}

// PopScope leaves the current scope.  Popping the outermost scope frees the
// whole table: frames, master list, and for the identifier namespace also
// the recycled symbol buffer and the function index.  The label namespace
// is per function; any label still tentative at that point was never
// defined.
func (n *Namespace) PopScope() {
	if n.depth == 0 {
		panic("symbol: PopScope on empty namespace " + n.name)
	}
	if n.depth > 1 {
		n.depth--
		glog.V(2).Infof("Left %s scope, back at depth %d", n.name, n.depth-1)
		return
	}

	glog.V(2).Infof("Tearing down %s namespace, %d symbols", n.name, len(n.symbols))
	n.frames = nil
	n.depth = 0
	for _, sym := range n.symbols {
		if n == n.table.Labels && sym.Kind == Tentative {
			n.table.reporter.Fatalf("Undefined label '%s'.", sym.EmitName())
		}
	}
	n.symbols = nil
	n.cursor = 0

	if n == n.table.Identifiers {
		n.table.clearBuffers()
	}
}

// Depth returns the current scope depth, 0 for file scope.  At least one
// scope must be active.
func (n *Namespace) Depth() int {
	if n.depth == 0 {
		panic("symbol: no active scope in namespace " + n.name)
	}
	return n.depth - 1
}

// Lookup finds the innermost visible declaration of name, or nil.  A hit
// marks the symbol referenced.
func (n *Namespace) Lookup(name string) *Symbol {
	for i := n.depth - 1; i >= 0; i-- {
		s := n.frames[i]
		if s.state != scopeReady {
			continue
		}
		if sym, ok := s.table[name]; ok {
			sym.Referenced = true
			return sym
		}
	}
	return nil
}

// makeVisible binds sym in the innermost scope.  The frame's map is created
// on first use with a size hint by depth, and cleared lazily when the frame
// is left over from a sibling block.
func (n *Namespace) makeVisible(sym *Symbol) {
	s := n.frames[n.depth-1]
	switch s.state {
	case scopeCreated:
		s.table = make(map[string]*Symbol, capForDepth(n.depth-1))
	case scopeDirty:
		clear(s.table)
	}
	s.table[sym.Name] = sym
	s.state = scopeReady
}
