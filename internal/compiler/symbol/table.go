// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"fmt"

	"github.com/scclang/scc/internal/compiler/diag"
	"github.com/scclang/scc/internal/compiler/intern"
)

// Table is one translation unit's symbol session.
type Table struct {
	Identifiers *Namespace
	Labels      *Namespace
	Tags        *Namespace

	names    *intern.Table
	reporter diag.Reporter

	// funcs indexes function declarations by name into the identifier
	// namespace's master list.  It coerces forward declarations made in
	// inner scope onto one symbol:
	//
	//	int foo(void) {
	//	    int bar(int);
	//	    return bar(42);
	//	}
	//
	//	int bar(int a) {
	//	    return a * a;
	//	}
	//
	// Both references to bar must resolve to the same symbol, even though
	// the first declaration is not in scope for the actual definition.
	funcs map[string]int

	// pool recycles symbol records between function definitions.
	pool pool

	// Generated-name counters, one per prefix, plus the scoped-static
	// disambiguator.  Session-owned, so concurrent translation units
	// never share numbering.
	statics   int
	temps     int
	unnamed   int
	genLabels int
	consts    int
	strs      int
}

// Option configures a Table.
type Option interface {
	apply(*Table) error
}

// Reporter sets the diagnostic reporter.  The default is a
// diag.PanicReporter, to be paired with diag.Recover at the driver
// boundary.
func Reporter(r diag.Reporter) Option {
	return reporterOption{r}
}

type reporterOption struct {
	r diag.Reporter
}

func (opt reporterOption) apply(t *Table) error {
	if opt.r == nil {
		return fmt.Errorf("nil diagnostic reporter")
	}
	t.reporter = opt.r
	return nil
}

// Interner shares a string arena with the caller, for drivers that intern
// source text before declaring it.
func Interner(names *intern.Table) Option {
	return internerOption{names}
}

type internerOption struct {
	names *intern.Table
}

func (opt internerOption) apply(t *Table) error {
	if opt.names == nil {
		return fmt.Errorf("nil intern table")
	}
	t.names = opt.names
	return nil
}

// New creates an empty session.  No scope is active yet; callers push the
// file scope of each namespace before declaring.
func New(options ...Option) (*Table, error) {
	t := &Table{
		names:    intern.NewTable(0),
		reporter: diag.PanicReporter{},
		funcs:    make(map[string]int, 64),
	}
	t.Identifiers = newNamespace("identifiers", t)
	t.Labels = newNamespace("labels", t)
	t.Tags = newNamespace("tags", t)
	for _, option := range options {
		if err := option.apply(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// clearBuffers drops state held for the whole translation unit: recycled
// symbol records, the function index, and the generated-name counters.
// Runs when the identifier namespace's outermost scope pops, leaving the
// session reusable for the next unit with numbering starting over.
func (t *Table) clearBuffers() {
	t.pool.drop()
	t.funcs = make(map[string]int, 64)
	t.statics = 0
	t.temps = 0
	t.unnamed = 0
	t.genLabels = 0
	t.consts = 0
	t.strs = 0
}

// canon returns the canonical interned spelling of name, so every symbol
// record for one identifier shares a single backing string.
func (t *Table) canon(name string) string {
	return t.names.Canon(name)
}

// Names exposes the session's string arena.
func (t *Table) Names() *intern.Table {
	return t.names
}

// PoolStats reports fresh allocations and recycled reuses of symbol records
// in this session.
func (t *Table) PoolStats() (allocs, reuses int) {
	return t.pool.allocs, t.pool.reuses
}
