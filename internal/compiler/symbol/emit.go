// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/groupcache/lru"
	"github.com/scclang/scc/internal/compiler/ctypes"
)

// Dump writes a human readable description of every symbol in the
// namespace, in declaration order.  Diagnostic output, not a stable
// format.
func (n *Namespace) Dump(w io.Writer) {
	// Type renderings repeat heavily in C code; memoize them for the
	// duration of the dump.  The memo cannot outlive the call, since
	// array completion mutates type nodes in place.
	memo := lru.New(64)
	for i, sym := range n.symbols {
		if i == 0 {
			fmt.Fprintf(w, "namespace %s:\n", n.name)
		}
		printSymbol(w, sym, memo)
		fmt.Fprintln(w)
	}
}

func typeString(memo *lru.Cache, typ *ctypes.Type) string {
	if cached, ok := memo.Get(typ); ok {
		return cached.(string)
	}
	s := typ.String()
	memo.Add(typ, s)
	return s
}

func printSymbol(w io.Writer, sym *Symbol, memo *lru.Cache) {
	fmt.Fprint(w, strings.Repeat("  ", sym.Depth))
	switch sym.Linkage {
	case LinkIntern:
		fmt.Fprint(w, "static ")
	case LinkExtern:
		fmt.Fprint(w, "global ")
	}

	if sym.Kind == Tag {
		// Tag symbols name a struct, union or enum; an enum tag's type
		// is plain int.
		switch {
		case ctypes.IsStruct(sym.Type):
			fmt.Fprint(w, "struct ")
		case ctypes.IsUnion(sym.Type):
			fmt.Fprint(w, "union ")
		default:
			fmt.Fprint(w, "enum ")
		}
	} else {
		fmt.Fprintf(w, "%s ", sym.Kind)
	}

	fmt.Fprintf(w, "%s :: %s", sym.EmitName(), typeString(memo, sym.Type))
	if size := sym.Type.SizeOf(); size != 0 {
		fmt.Fprintf(w, ", size=%d", size)
	}
	if sym.StackOffset != 0 {
		fmt.Fprintf(w, ", (stack_offset: %d)", sym.StackOffset)
	}
	if ctypes.IsVLA(sym.Type) {
		fmt.Fprintf(w, ", (vla_address: %s)", sym.VLAAddr.EmitName())
	}

	if sym.Kind == Constant {
		switch {
		case ctypes.IsSigned(sym.Type):
			fmt.Fprintf(w, ", value=%d", sym.Const.I)
		case ctypes.IsUnsigned(sym.Type):
			fmt.Fprintf(w, ", value=%d", sym.Const.U)
		case ctypes.IsFloat(sym.Type):
			fmt.Fprintf(w, ", value=%ff", sym.Const.F)
		default:
			fmt.Fprintf(w, ", value=%f", sym.Const.F)
		}
	}
}

// AssembleTentative reserves storage for every tentative definition that
// was never completed, writing .local and .comm directives to the assembly
// stream.  Run once per translation unit, before the identifier namespace
// pops.
func (t *Table) AssembleTentative(w io.Writer) {
	for _, sym := range t.Identifiers.symbols {
		if sym.Kind == Tentative && ctypes.IsObject(sym.Type) {
			if sym.Linkage == LinkIntern {
				fmt.Fprintf(w, "\t.local %s\n", sym.EmitName())
			}
			size := sym.Type.SizeOf()
			fmt.Fprintf(w, "\t.comm %s, %d, %d\n",
				sym.EmitName(), size, asmAlignment(size))
		}
	}
}

func asmAlignment(size int) int {
	if size >= 16 {
		return 16
	}
	if size >= 8 {
		return 8
	}
	return 4
}

// NextDeclaration yields, one per call, the symbols the backend must emit
// data for: tentative definitions, string literals, floating point
// constants, and referenced extern declarations.  Returns nil when the
// master list is exhausted.
func (n *Namespace) NextDeclaration() *Symbol {
	for n.cursor < len(n.symbols) {
		sym := n.symbols[n.cursor]
		n.cursor++
		switch sym.Kind {
		case Tentative, StringValue:
			return sym
		case Constant:
			if ctypes.IsReal(sym.Type) {
				return sym
			}
		case Declaration:
			if sym.Linkage == LinkExtern && sym.Referenced {
				return sym
			}
		}
	}
	return nil
}
