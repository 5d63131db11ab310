// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

// Package intern deduplicates identifier text and string literal payloads
// for a translation unit.  Strings live in a compact slice-based arena and
// are referenced by Handle; nothing downstream owns a copy.
package intern

import (
	"fmt"

	"fortio.org/safecast"
)

// Handle addresses one interned string.  The zero Handle is reserved and
// resolves to the empty string.
type Handle uint32

// Valid reports whether h addresses an interned string.
func (h Handle) Valid() bool { return h != 0 }

// Table is the interning arena.  Use NewTable; the zero value is not usable.
type Table struct {
	ids  map[string]Handle
	strs []string
}

// NewTable creates an arena with an optional capacity hint.
func NewTable(capacity uint32) *Table {
	if capacity == 0 {
		capacity = 64
	}
	return &Table{
		ids:  make(map[string]Handle, capacity),
		strs: make([]string, 1, capacity+1), // index 0 reserved for the zero Handle
	}
}

// Intern returns the handle for s, adding it to the arena on first use.
func (t *Table) Intern(s string) Handle {
	if h, ok := t.ids[s]; ok {
		return h
	}
	value, err := safecast.Convert[uint32](len(t.strs))
	if err != nil {
		panic(fmt.Errorf("intern arena overflow: %w", err))
	}
	h := Handle(value)
	t.strs = append(t.strs, s)
	t.ids[s] = h
	return h
}

// Value resolves a handle to its canonical string.  Value of the zero
// Handle is "".
func (t *Table) Value(h Handle) string {
	if h == 0 || int(h) >= len(t.strs) {
		return ""
	}
	return t.strs[h]
}

// Canon returns the canonical backing string for s, interning it first if
// needed.  Holding the canonical string lets equal identifiers share one
// allocation for the life of the translation unit.
func (t *Table) Canon(s string) string {
	return t.strs[t.Intern(s)]
}

// Len reports the number of distinct strings interned.
func (t *Table) Len() int { return len(t.strs) - 1 }
