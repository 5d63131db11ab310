// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

// Package ctypes models C types for the compiler front end.  A type is a
// small tree of nodes: scalars are leaves, while pointers, arrays and
// functions chain through Next and aggregates carry Members.  Incomplete
// array and function types are completed by mutating the node in place, so
// every symbol holding a reference observes the completed type.
package ctypes

// Class discriminates the kind of a type node.
type Class int

const (
	Void Class = iota
	Signed
	Unsigned
	Float
	Double
	LongDouble
	Pointer
	Function
	Array
	Struct
	Union
)

var classNames = map[Class]string{
	Void:       "void",
	Signed:     "signed",
	Unsigned:   "unsigned",
	Float:      "float",
	Double:     "double",
	LongDouble: "long double",
	Pointer:    "pointer",
	Function:   "function",
	Array:      "array",
	Struct:     "struct",
	Union:      "union",
}

func (c Class) String() string {
	return classNames[c]
}

// Member is a struct or union field, or a function parameter.
type Member struct {
	Name   string
	Type   *Type
	Offset int
}

// Type is one node of the representation.  Size is the total storage in
// bytes; it is zero for functions, incomplete arrays and aggregates not yet
// laid out.  Arrays do not store their length separately: it is Size
// divided by the element size.
type Type struct {
	Class   Class
	Size    int
	VLA     bool
	Tag     string
	Next    *Type    // array element, pointee, or function return type
	Members []Member // aggregate fields or function parameters
}

// Basic type singletons.  These are shared and must never be mutated.
var (
	CVoid    = &Type{Class: Void}
	CChar    = &Type{Class: Signed, Size: 1}
	CShort   = &Type{Class: Signed, Size: 2}
	CInt     = &Type{Class: Signed, Size: 4}
	CLong    = &Type{Class: Signed, Size: 8}
	CUChar   = &Type{Class: Unsigned, Size: 1}
	CUShort  = &Type{Class: Unsigned, Size: 2}
	CUInt    = &Type{Class: Unsigned, Size: 4}
	CULong   = &Type{Class: Unsigned, Size: 8}
	CFloat   = &Type{Class: Float, Size: 4}
	CDouble  = &Type{Class: Double, Size: 8}
	CLDouble = &Type{Class: LongDouble, Size: 16}
)

// PointerTo returns a new pointer type.
func PointerTo(to *Type) *Type {
	return &Type{Class: Pointer, Size: 8, Next: to}
}

// ArrayOf returns a new array type of n elements.  n == 0 yields an
// incomplete array, to be completed later with SetArrayLength.
func ArrayOf(elem *Type, n int) *Type {
	return &Type{Class: Array, Size: n * elem.SizeOf(), Next: elem}
}

// VLAOf returns a variable-length array type.  Its storage size is unknown
// until run time.
func VLAOf(elem *Type) *Type {
	return &Type{Class: Array, VLA: true, Next: elem}
}

// FuncOf returns a new function type with unnamed parameters.  A function
// with no recorded parameters has no prototype yet; a later declaration may
// supply one.
func FuncOf(ret *Type, params ...*Type) *Type {
	t := &Type{Class: Function, Next: ret}
	for _, p := range params {
		t.Members = append(t.Members, Member{Type: p})
	}
	return t
}

// StructOf returns a new struct type and lays out the given members.
func StructOf(members ...Member) *Type {
	t := &Type{Class: Struct, Members: members}
	if len(members) > 0 {
		t.AlignMembers()
	}
	return t
}

// UnionOf returns a new union type and lays out the given members.
func UnionOf(members ...Member) *Type {
	t := &Type{Class: Union, Members: members}
	if len(members) > 0 {
		t.AlignMembers()
	}
	return t
}

// AddMember appends a function parameter or an aggregate field.  Aggregate
// callers finish with AlignMembers to compute offsets and total size.
func (t *Type) AddMember(name string, typ *Type) *Type {
	t.Members = append(t.Members, Member{Name: name, Type: typ})
	return t
}

// AlignMembers lays out the members of a struct or union and returns the
// total size.  Struct fields get increasing offsets with natural alignment
// padding; union fields all sit at offset zero.
func (t *Type) AlignMembers() int {
	if t.Class != Struct && t.Class != Union {
		panic("ctypes: AlignMembers on " + t.Class.String())
	}
	var size, align int
	for i := range t.Members {
		m := &t.Members[i]
		a := m.Type.Alignment()
		if a > align {
			align = a
		}
		if t.Class == Union {
			m.Offset = 0
			if s := m.Type.SizeOf(); s > size {
				size = s
			}
		} else {
			size = alignTo(size, a)
			m.Offset = size
			size += m.Type.SizeOf()
		}
	}
	t.Size = alignTo(size, align)
	return t.Size
}

func alignTo(n, a int) int {
	if a <= 1 {
		return n
	}
	return (n + a - 1) &^ (a - 1)
}

// SizeOf returns total storage in bytes, zero for functions and incomplete
// types.
func (t *Type) SizeOf() int {
	return t.Size
}

// Alignment returns the natural alignment in bytes, zero for functions and
// void.
func (t *Type) Alignment() int {
	switch t.Class {
	case Array:
		return t.Next.Alignment()
	case Struct, Union:
		var a int
		for i := range t.Members {
			if x := t.Members[i].Type.Alignment(); x > a {
				a = x
			}
		}
		return a
	case Function, Void:
		return 0
	default:
		return t.Size
	}
}

// Len returns the element count of an array type, zero when incomplete.
func (t *Type) Len() int {
	if t.Class != Array || t.VLA || t.Next.SizeOf() == 0 {
		return 0
	}
	return t.Size / t.Next.SizeOf()
}

// NMembers returns the number of parameters or fields.
func (t *Type) NMembers() int {
	return len(t.Members)
}

// SetArrayLength completes an incomplete array type in place.
func (t *Type) SetArrayLength(n int) {
	if t.Class != Array {
		panic("ctypes: SetArrayLength on " + t.Class.String())
	}
	t.Size = n * t.Next.SizeOf()
}

// SetTag records the declared tag name of a struct or union, used when
// rendering the type.  No-op for other classes.
func (t *Type) SetTag(tag string) {
	if t.Class == Struct || t.Class == Union {
		t.Tag = tag
	}
}

// Equal reports structural equality.  Struct and union types are nominal:
// two distinct declarations never compare equal, matching C.  Parameter and
// field names do not participate; an incomplete array differs from a
// completed one.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Class != b.Class {
		return false
	}
	if a.Class == Struct || a.Class == Union {
		return false // nominal, and a != b
	}
	if a.Size != b.Size || a.VLA != b.VLA || len(a.Members) != len(b.Members) {
		return false
	}
	for i := range a.Members {
		if !Equal(a.Members[i].Type, b.Members[i].Type) {
			return false
		}
	}
	if a.Next == nil || b.Next == nil {
		return a.Next == b.Next
	}
	return Equal(a.Next, b.Next)
}

func IsVoid(t *Type) bool       { return t.Class == Void }
func IsSigned(t *Type) bool     { return t.Class == Signed }
func IsUnsigned(t *Type) bool   { return t.Class == Unsigned }
func IsInteger(t *Type) bool    { return t.Class == Signed || t.Class == Unsigned }
func IsFloat(t *Type) bool      { return t.Class == Float }
func IsDouble(t *Type) bool     { return t.Class == Double }
func IsLongDouble(t *Type) bool { return t.Class == LongDouble }
func IsPointer(t *Type) bool    { return t.Class == Pointer }
func IsFunction(t *Type) bool   { return t.Class == Function }
func IsArray(t *Type) bool      { return t.Class == Array }
func IsStruct(t *Type) bool     { return t.Class == Struct }
func IsUnion(t *Type) bool      { return t.Class == Union }
func IsVLA(t *Type) bool        { return t.Class == Array && t.VLA }

// IsReal reports whether t is a floating point type.
func IsReal(t *Type) bool {
	return t.Class == Float || t.Class == Double || t.Class == LongDouble
}

// IsStructOrUnion reports whether t is an aggregate with fields.
func IsStructOrUnion(t *Type) bool {
	return t.Class == Struct || t.Class == Union
}

// IsObject reports whether t is an object type, anything but a function.
func IsObject(t *Type) bool {
	return t.Class != Function
}
