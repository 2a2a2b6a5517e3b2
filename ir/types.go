//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package ir

import (
	"fmt"
)

// TypeKind specifies a signal ground type.
type TypeKind byte

// Signal ground types.
const (
	KindUnknown TypeKind = iota
	KindUInt
	KindSInt
	KindClock
)

func (k TypeKind) String() string {
	switch k {
	case KindUnknown:
		return "?"
	case KindUInt:
		return "UInt"
	case KindSInt:
		return "SInt"
	case KindClock:
		return "Clock"
	default:
		return fmt.Sprintf("{TypeKind %d}", k)
	}
}

// Type specifies a signal type. Width 0 means that the width was
// left for the elaborator to infer; the translator renders exactly
// the structure it is given and never re-derives widths.
type Type struct {
	Kind  TypeKind
	Width int32
}

func (t Type) String() string {
	switch t.Kind {
	case KindUInt, KindSInt:
		if t.Width > 0 {
			return fmt.Sprintf("%s<%d>", t.Kind, t.Width)
		}
		return t.Kind.String()
	default:
		return t.Kind.String()
	}
}

// Undefined tests if the type is undefined.
func (t Type) Undefined() bool {
	return t.Kind == KindUnknown
}
