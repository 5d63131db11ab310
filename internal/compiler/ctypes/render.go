// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package ctypes

import (
	"fmt"
	"strings"
)

// String renders the type in the prefix notation used by diagnostics and
// the symbol table dump: "int", "* int", "[10] int", "(int, int) : int",
// "struct point".  Not a C declarator; not a stable wire format.
func (t *Type) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *Type) render(b *strings.Builder) {
	switch t.Class {
	case Void:
		b.WriteString("void")
	case Signed:
		b.WriteString(signedName(t.Size))
	case Unsigned:
		b.WriteString("unsigned " + signedName(t.Size))
	case Float:
		b.WriteString("float")
	case Double:
		b.WriteString("double")
	case LongDouble:
		b.WriteString("long double")
	case Pointer:
		b.WriteString("* ")
		t.Next.render(b)
	case Array:
		switch {
		case t.VLA:
			b.WriteString("[*] ")
		case t.Size == 0:
			b.WriteString("[] ")
		default:
			fmt.Fprintf(b, "[%d] ", t.Len())
		}
		t.Next.render(b)
	case Function:
		b.WriteByte('(')
		for i := range t.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			t.Members[i].Type.render(b)
		}
		b.WriteString(") : ")
		t.Next.render(b)
	case Struct, Union:
		kw := "struct"
		if t.Class == Union {
			kw = "union"
		}
		if t.Tag != "" {
			b.WriteString(kw + " " + t.Tag)
			return
		}
		b.WriteString(kw + " {")
		for i := range t.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			t.Members[i].Type.render(b)
		}
		b.WriteByte('}')
	}
}

func signedName(size int) string {
	switch size {
	case 1:
		return "char"
	case 2:
		return "short"
	case 4:
		return "int"
	case 8:
		return "long"
	}
	return fmt.Sprintf("int:%d", size)
}
