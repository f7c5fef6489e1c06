// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"unsafe"
)

// Kind tags one of the fixed-width numeric kinds the byte codec supports.
type Kind uint8

// Kinds. The names give signedness and bit width; Invalid is the zero value.
const (
	Invalid Kind = iota
	I8
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
)

var kindNames = [...]string{
	Invalid: "invalid",
	I8:      "i8",
	I16:     "i16",
	I32:     "i32",
	I64:     "i64",
	I128:    "i128",
	U8:      "u8",
	U16:     "u16",
	U32:     "u32",
	U64:     "u64",
	U128:    "u128",
	F32:     "f32",
	F64:     "f64",
}

var kindWidths = [...]int{
	I8: 1, I16: 2, I32: 4, I64: 8, I128: 16,
	U8: 1, U16: 2, U32: 4, U64: 8, U128: 16,
	F32: 4, F64: 8,
}

// String returns the short kind name ("i8", "u128", "f32", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Width is the encoded width of the kind in bytes; 0 for Invalid.
func (k Kind) Width() int {
	if int(k) < len(kindWidths) {
		return kindWidths[k]
	}
	return 0
}

// IsFloat reports whether k is an IEEE-754 kind.
func (k Kind) IsFloat() bool { return k == F32 || k == F64 }

// IsSigned reports whether k can hold negative values.
func (k Kind) IsSigned() bool {
	return (k >= I8 && k <= I128) || k.IsFloat()
}

// Valid reports whether k names a real kind.
func (k Kind) Valid() bool { return k > Invalid && k <= F64 }

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := I8; k <= F64; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// KindOf derives the Kind of T from its behaviour, so named types
// (type Meters float32) resolve to their underlying kind.
// Platform-sized int and uint map to the kind of their width.
func KindOf[T Number]() Kind {
	var zero T
	width := unsafe.Sizeof(zero)
	half := 0.5
	if T(half) != zero {
		if width == 4 {
			return F32
		}
		return F64
	}
	one := T(1)
	signed := zero-one < zero
	var k Kind
	switch width {
	case 1:
		k = I8
	case 2:
		k = I16
	case 4:
		k = I32
	default:
		k = I64
	}
	if !signed {
		k += U8 - I8
	}
	return k
}
