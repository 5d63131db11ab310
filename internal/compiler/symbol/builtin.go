// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"github.com/scclang/scc/internal/compiler/ctypes"
)

// vaListType is the System V AMD64 ABI va_list: a one-element array of a
// four-field bookkeeping struct, so that declaring a va_list object gives
// pointer semantics when passed to the va_* builtins.  A single shared
// instance keeps repeated registration idempotent, since aggregate types
// compare nominally.
var vaListType = func() *ctypes.Type {
	reg := ctypes.StructOf()
	reg.AddMember("gp_offset", ctypes.CUInt)
	reg.AddMember("fp_offset", ctypes.CUInt)
	reg.AddMember("overflow_arg_area", ctypes.PointerTo(ctypes.CVoid))
	reg.AddMember("reg_save_area", ctypes.PointerTo(ctypes.CVoid))
	reg.AlignMembers()
	return ctypes.ArrayOf(reg, 1)
}()

// DeclareBuiltins registers the compiler builtins that standard library
// headers assume to exist.  Call after pushing the identifier namespace's
// file scope.
func (t *Table) DeclareBuiltins() {
	t.Identifiers.Declare("__builtin_va_list", vaListType, Typedef, LinkNone)
	t.Identifiers.Declare("__builtin_va_start",
		ctypes.FuncOf(ctypes.CVoid), Declaration, LinkExtern)
	t.Identifiers.Declare("__builtin_va_arg",
		ctypes.FuncOf(ctypes.CVoid), Declaration, LinkExtern)
}
