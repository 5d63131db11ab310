// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import "expvar"

var (
	// poolAllocs counts symbol records newly allocated across all sessions.
	poolAllocs = expvar.NewInt("symbol_pool_allocs_total")
	// poolReuses counts symbol records served from a recycling pool.
	poolReuses = expvar.NewInt("symbol_pool_reuses_total")
)

// pool recycles Symbol records between function definitions.  Discarded
// temporaries and labels come back through get zeroed, keeping allocation
// flat across a translation unit of many functions.
type pool struct {
	free   []*Symbol
	allocs int
	reuses int
}

func (p *pool) get() *Symbol {
	if n := len(p.free); n > 0 {
		sym := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		*sym = Symbol{}
		p.reuses++
		poolReuses.Add(1)
		return sym
	}
	p.allocs++
	poolAllocs.Add(1)
	return &Symbol{}
}

func (p *pool) put(sym *Symbol) {
	p.free = append(p.free, sym)
}

func (p *pool) drop() {
	p.free = nil
}
