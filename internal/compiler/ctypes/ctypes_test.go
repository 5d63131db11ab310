// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package ctypes

import (
	"testing"
)

var typeStringTests = []struct {
	typ      *Type
	expected string
}{
	{CVoid, "void"},
	{CChar, "char"},
	{CShort, "short"},
	{CInt, "int"},
	{CLong, "long"},
	{CUChar, "unsigned char"},
	{CUInt, "unsigned int"},
	{CULong, "unsigned long"},
	{CFloat, "float"},
	{CDouble, "double"},
	{CLDouble, "long double"},
	{PointerTo(CInt), "* int"},
	{PointerTo(PointerTo(CChar)), "* * char"},
	{ArrayOf(CInt, 10), "[10] int"},
	{ArrayOf(CInt, 0), "[] int"},
	{VLAOf(CDouble), "[*] double"},
	{ArrayOf(PointerTo(CChar), 4), "[4] * char"},
	{FuncOf(CInt), "() : int"},
	{FuncOf(CInt, CInt, CInt), "(int, int) : int"},
	{FuncOf(CVoid, PointerTo(CVoid)), "(* void) : void"},
	{PointerTo(FuncOf(CInt, CLong)), "* (long) : int"},
	{func() *Type {
		t := StructOf()
		t.AddMember("x", CInt)
		t.AddMember("y", CInt)
		t.AlignMembers()
		t.SetTag("point")
		return t
	}(), "struct point"},
	{StructOf(Member{Name: "a", Type: CUInt}, Member{Name: "b", Type: PointerTo(CVoid)}),
		"struct {unsigned int, * void}"},
	{UnionOf(Member{Name: "i", Type: CInt}, Member{Name: "f", Type: CFloat}),
		"union {int, float}"},
}

func TestTypeString(t *testing.T) {
	for _, tc := range typeStringTests {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.expected {
				t.Errorf("want %q, got %q", tc.expected, got)
			}
		})
	}
}

var typeEqualTests = []struct {
	name     string
	a, b     *Type
	expected bool
}{
	{"same singleton", CInt, CInt, true},
	{"int vs long", CInt, CLong, false},
	{"int vs unsigned int", CInt, CUInt, false},
	{"pointers to same", PointerTo(CInt), PointerTo(CInt), true},
	{"pointers to different", PointerTo(CInt), PointerTo(CChar), false},
	{"arrays same length", ArrayOf(CInt, 8), ArrayOf(CInt, 8), true},
	{"arrays different length", ArrayOf(CInt, 8), ArrayOf(CInt, 9), false},
	{"complete vs incomplete array", ArrayOf(CInt, 8), ArrayOf(CInt, 0), false},
	{"functions same prototype", FuncOf(CInt, CInt, CInt), FuncOf(CInt, CInt, CInt), true},
	{"functions parameter names ignored",
		func() *Type { t := FuncOf(CInt); t.AddMember("a", CInt); return t }(),
		func() *Type { t := FuncOf(CInt); t.AddMember("b", CInt); return t }(),
		true},
	{"functions different arity", FuncOf(CInt, CInt), FuncOf(CInt, CInt, CInt), false},
	{"functions different return", FuncOf(CInt, CInt), FuncOf(CLong, CInt), false},
	{"structs are nominal",
		StructOf(Member{Name: "x", Type: CInt}),
		StructOf(Member{Name: "x", Type: CInt}),
		false},
}

func TestTypeEqual(t *testing.T) {
	for _, tc := range typeEqualTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.expected {
				t.Errorf("Equal(%s, %s): want %v, got %v", tc.a, tc.b, tc.expected, got)
			}
			if got := Equal(tc.b, tc.a); got != tc.expected {
				t.Errorf("Equal(%s, %s): want %v, got %v", tc.b, tc.a, tc.expected, got)
			}
		})
	}
}

func TestSelfEqualIncludesAggregates(t *testing.T) {
	s := StructOf(Member{Name: "x", Type: CInt})
	if !Equal(s, s) {
		t.Error("aggregate not equal to itself")
	}
}

func TestArrayCompletionInPlace(t *testing.T) {
	arr := ArrayOf(CInt, 0)
	alias := arr
	if got := arr.Len(); got != 0 {
		t.Errorf("incomplete array Len: want 0, got %d", got)
	}
	arr.SetArrayLength(12)
	if got := alias.Len(); got != 12 {
		t.Errorf("alias Len after completion: want 12, got %d", got)
	}
	if got := alias.SizeOf(); got != 48 {
		t.Errorf("alias SizeOf after completion: want 48, got %d", got)
	}
}

func TestStructLayout(t *testing.T) {
	s := StructOf()
	s.AddMember("c", CChar)
	s.AddMember("l", CLong)
	s.AddMember("i", CInt)
	size := s.AlignMembers()
	if size != 24 {
		t.Errorf("size: want 24, got %d", size)
	}
	wantOffsets := []int{0, 8, 16}
	for i, m := range s.Members {
		if m.Offset != wantOffsets[i] {
			t.Errorf("member %q offset: want %d, got %d", m.Name, wantOffsets[i], m.Offset)
		}
	}
	if got := s.Alignment(); got != 8 {
		t.Errorf("alignment: want 8, got %d", got)
	}
}

func TestUnionLayout(t *testing.T) {
	u := UnionOf(
		Member{Name: "c", Type: CChar},
		Member{Name: "d", Type: CDouble},
	)
	if got := u.SizeOf(); got != 8 {
		t.Errorf("size: want 8, got %d", got)
	}
	for _, m := range u.Members {
		if m.Offset != 0 {
			t.Errorf("member %q offset: want 0, got %d", m.Name, m.Offset)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !IsObject(CInt) || IsObject(FuncOf(CVoid)) {
		t.Error("IsObject misclassifies")
	}
	if !IsReal(CFloat) || !IsReal(CDouble) || !IsReal(CLDouble) || IsReal(CInt) {
		t.Error("IsReal misclassifies")
	}
	if !IsVLA(VLAOf(CInt)) || IsVLA(ArrayOf(CInt, 3)) {
		t.Error("IsVLA misclassifies")
	}
	if !IsInteger(CUChar) || IsInteger(CFloat) {
		t.Error("IsInteger misclassifies")
	}
}
