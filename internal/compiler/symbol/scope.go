// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

// scopeState tracks reuse of a scope frame across sibling blocks at the
// same nesting depth.
type scopeState int

const (
	scopeCreated scopeState = iota // fresh frame, no map allocated yet
	scopeDirty                     // re-entered frame with stale entries
	scopeReady                     // live entries at the current depth
)

// scope is one frame of a namespace's lexical stack.  The map is allocated
// on first insert and cleared, not reallocated, when the frame is reused by
// a sibling block.
type scope struct {
	state scopeState
	table map[string]*Symbol
}

// Map size hints by scope depth at first insert.  File scope holds the bulk
// of declarations; depth 1 contains function parameters and is assumed to
// hold fewer symbols.
var scopeCap = [...]int{256, 16, 128, 64, 32, 16}

const scopeCapDefault = 8

func capForDepth(depth int) int {
	if depth < len(scopeCap) {
		return scopeCap[depth]
	}
	return scopeCapDefault
}
