// File: meta/meta.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tagged-value container: a small self-describing cell carrying either
// an inline scalar (signed integer, binary float) or a byte payload,
// with unit and byte dimension/length accounting. Independent of the
// ring packages; slot owners can use it as a payload element type, but
// nothing here knows about ring indices.

package meta

import "unicode/utf8"

// Format describes what the value buffer holds.
type Format uint16

const (
	FormatInvalid     Format = 0      // No valid data
	FormatPointer     Format = 1 << 0 // Byte payload
	FormatSignedInt   Format = 1 << 1 // Inline signed integer
	FormatBinaryFloat Format = 1 << 2 // Inline binary floating point
)

// Alloc describes the ownership class of a byte payload.
type Alloc uint16

const (
	AllocStatic  Alloc = iota // Read-only shared data
	AllocDynamic              // Read/write growable data
	AllocFixed                // Read/write fixed-size data
)

// Type is the semantic data type of a value.
type Type uint16

const (
	TypeUndefined    Type = iota
	TypeASCIIChar         // ASCII, padded
	TypeASCIIVarChar      // ASCII, variable length
	TypeUTF8Char          // UTF-8, padded
	TypeUTF8VarChar       // UTF-8, variable length
	TypeIntS4             // Signed integer, 1..4 digits
	TypeIntS9             // Signed integer, 5..9 digits
	TypeIntS19            // Signed integer, 10..19 digits
	TypeBinaryFloat       // Binary floating point, 16 digits
)

func (t Type) String() string {
	switch t {
	case TypeASCIIChar:
		return "ascii-char"
	case TypeASCIIVarChar:
		return "ascii-varchar"
	case TypeUTF8Char:
		return "utf8-char"
	case TypeUTF8VarChar:
		return "utf8-varchar"
	case TypeIntS4:
		return "int-s4"
	case TypeIntS9:
		return "int-s9"
	case TypeIntS19:
		return "int-s19"
	case TypeBinaryFloat:
		return "binfp"
	default:
		return "undefined"
	}
}

// Value is a tagged cell. The zero Value is invalid.
type Value struct {
	buf    []byte
	si     int64
	bfp    float64
	format Format
	alloc  Alloc
	typ    Type

	unitDim uint32 // Dimension in units
	unitLen uint32 // Length in units
	byteDim uint32 // Dimension in bytes
	byteLen uint32 // Length in bytes
}

// Int returns a signed-integer value. The type tag reflects the digit
// count so readers can pick a compact external representation.
func Int(v int64) Value {
	t := TypeIntS19
	switch {
	case v >= -9999 && v <= 9999:
		t = TypeIntS4
	case v >= -999999999 && v <= 999999999:
		t = TypeIntS9
	}
	return Value{
		si:      v,
		format:  FormatSignedInt,
		typ:     t,
		unitDim: 1,
		unitLen: 1,
		byteDim: 8,
		byteLen: 8,
	}
}

// Float returns a binary floating point value.
func Float(v float64) Value {
	return Value{
		bfp:     v,
		format:  FormatBinaryFloat,
		typ:     TypeBinaryFloat,
		unitDim: 1,
		unitLen: 1,
		byteDim: 8,
		byteLen: 8,
	}
}

// Bytes returns a pointer-format value over b without copying. The
// caller chooses the semantic type and ownership class; units are bytes.
func Bytes(b []byte, typ Type, alloc Alloc) Value {
	return Value{
		buf:     b,
		format:  FormatPointer,
		alloc:   alloc,
		typ:     typ,
		unitDim: uint32(cap(b)),
		unitLen: uint32(len(b)),
		byteDim: uint32(cap(b)),
		byteLen: uint32(len(b)),
	}
}

// String returns a UTF-8 varchar value. Unit accounting counts runes,
// byte accounting counts encoded bytes.
func String(s string) Value {
	b := []byte(s)
	return Value{
		buf:     b,
		format:  FormatPointer,
		alloc:   AllocDynamic,
		typ:     TypeUTF8VarChar,
		unitDim: uint32(utf8.RuneCount(b)),
		unitLen: uint32(utf8.RuneCount(b)),
		byteDim: uint32(len(b)),
		byteLen: uint32(len(b)),
	}
}

// Valid reports whether the value carries data.
func (v Value) Valid() bool { return v.format != FormatInvalid }

// Format returns the buffer format tag.
func (v Value) Format() Format { return v.format }

// Alloc returns the ownership class of a pointer-format value.
func (v Value) Alloc() Alloc { return v.alloc }

// Type returns the semantic type tag.
func (v Value) Type() Type { return v.typ }

// Int returns the inline integer and whether the value holds one.
func (v Value) Int() (int64, bool) {
	return v.si, v.format == FormatSignedInt
}

// Float returns the inline float and whether the value holds one.
func (v Value) Float() (float64, bool) {
	return v.bfp, v.format == FormatBinaryFloat
}

// Bytes returns the byte payload and whether the value holds one.
func (v Value) Bytes() ([]byte, bool) {
	return v.buf, v.format == FormatPointer
}

// Text returns the payload as a string and whether the value is one of
// the character types.
func (v Value) Text() (string, bool) {
	switch v.typ {
	case TypeASCIIChar, TypeASCIIVarChar, TypeUTF8Char, TypeUTF8VarChar:
		return string(v.buf), v.format == FormatPointer
	}
	return "", false
}

// UnitDim returns the capacity in units (runes for text, elements otherwise).
func (v Value) UnitDim() uint32 { return v.unitDim }

// UnitLen returns the length in units.
func (v Value) UnitLen() uint32 { return v.unitLen }

// ByteDim returns the capacity in bytes.
func (v Value) ByteDim() uint32 { return v.byteDim }

// ByteLen returns the length in bytes.
func (v Value) ByteLen() uint32 { return v.byteLen }
