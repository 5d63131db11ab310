// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

// Package symbol implements the symbol table of the C front end.  A Table
// is one translation unit's session: it owns the three C namespaces
// (ordinary identifiers, goto labels, struct/union/enum tags), the lexical
// scope stack of each, the recycling pool for compiler-generated symbols,
// and every generated-name counter.  Declarations merge per C's
// re-declaration and linkage rules; conflicts are fatal through the
// session's diagnostic reporter.
package symbol

import (
	"fmt"
	"strings"

	"github.com/scclang/scc/internal/compiler/ctypes"
	"github.com/scclang/scc/internal/compiler/intern"
)

// Kind classifies what a symbol stands for.
type Kind int

const (
	// Definition has storage and an initializer or body.
	Definition Kind = iota
	// Tentative is a file scope object without initializer, or a goto
	// label seen before its statement.  May be completed into a
	// Definition; leftovers get storage reserved by AssembleTentative.
	Tentative
	// Declaration introduces a name whose storage lives elsewhere.
	Declaration
	// Typedef names a type.
	Typedef
	// Tag names a struct, union or enum.
	Tag
	// Constant is a compiler generated numeric literal.
	Constant
	// StringValue is a string literal with static storage.
	StringValue
	// Label is a defined jump target.
	Label
)

var kindNames = map[Kind]string{
	Definition:  "definition",
	Tentative:   "tentative",
	Declaration: "declaration",
	Typedef:     "typedef",
	Tag:         "tag",
	Constant:    "number",
	StringValue: "string",
	Label:       "label",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Linkage is a symbol's C linkage.
type Linkage int

const (
	LinkNone Linkage = iota
	LinkIntern
	LinkExtern
)

var linkageNames = map[Linkage]string{
	LinkNone:   "none",
	LinkIntern: "intern",
	LinkExtern: "extern",
}

func (l Linkage) String() string {
	return linkageNames[l]
}

// Name prefixes assigned to compiler generated symbols.
const (
	prefixTemporary = ".t"
	prefixUnnamed   = ".u"
	prefixConstant  = ".C"
	prefixString    = ".LC"
	prefixLabel     = ".L"
)

// Value is the payload of a numeric constant symbol.  The symbol's type
// class selects which field is meaningful.
type Value struct {
	I int64
	U uint64
	F float64
}

// Symbol is the canonical record for one declared or generated name.
// Records are owned by the session: scoped symbols by their namespace's
// master list until the outermost scope pops, generated ones by the caller
// until returned with Discard.
type Symbol struct {
	Name string
	// N disambiguates name collisions in emitted code.  Zero means emit
	// the name as-is; it is assigned once at creation and never changes.
	N       int
	Type    *ctypes.Type
	Kind    Kind
	Linkage Linkage
	// Depth is the scope depth at creation, 0 for file scope.  Function
	// declarations coerced from inner scopes keep the shallowest depth
	// seen.
	Depth      int
	Referenced bool

	// Filled in by later stages; stored but never interpreted here.
	StackOffset int
	VLAAddr     *Symbol
	Const       Value
	Str         intern.Handle
}

// EmitName returns the name to use in emitted assembly.  Generated symbols
// (".t", ".LC", ...) get the numeral appended directly; disambiguated
// statics insert a period between name and number.
func (s *Symbol) EmitName() string {
	if s.N == 0 {
		return s.Name
	}
	if strings.HasPrefix(s.Name, ".") {
		return fmt.Sprintf("%s%d", s.Name, s.N)
	}
	return fmt.Sprintf("%s.%d", s.Name, s.N)
}

// IsTemporary reports whether s was created by Temporary.
func (s *Symbol) IsTemporary() bool {
	return s.Name == prefixTemporary
}

func (s *Symbol) String() string {
	return s.EmitName()
}
