package ctype

import (
	"strings"
	"unsafe"
)

// Tag identifies a native scalar or pointer representation.
type Tag uint8

const (
	U8 Tag = iota
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	F32
	F64
	F80
	Pointer

	numTags
)

// Class groups tags by the numeric domain they hold.
type Class uint8

const (
	ClassInvalid Class = iota
	ClassInteger
	ClassFloat
	ClassPointer
)

var classNames = [...]string{
	ClassInvalid: "invalid",
	ClassInteger: "integer",
	ClassFloat:   "float",
	ClassPointer: "pointer",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

var tagNames = [...]string{
	U8:      "u8",
	S8:      "s8",
	U16:     "u16",
	S16:     "s16",
	U32:     "u32",
	S32:     "s32",
	U64:     "u64",
	S64:     "s64",
	F32:     "f32",
	F64:     "f64",
	F80:     "f80",
	Pointer: "pointer",
}

// PointerSize is the byte width of a native address on this host.
const PointerSize = unsafe.Sizeof(uintptr(0))

// ExtendedSize is the storage width of an x87 extended float.
// Only the low 10 bytes are significant; the rest is padding.
const ExtendedSize = 16

var tagWidths = [...]uintptr{
	U8:      1,
	S8:      1,
	U16:     2,
	S16:     2,
	U32:     4,
	S32:     4,
	U64:     8,
	S64:     8,
	F32:     4,
	F64:     8,
	F80:     ExtendedSize,
	Pointer: PointerSize,
}

// Canonical name of the tag, used in error messages.
func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return "unknown"
}

func (t Tag) Valid() bool {
	return t < numTags
}

// Width returns the number of bytes a slot of this tag occupies, or 0 for an
// invalid tag.
func (t Tag) Width() uintptr {
	if t < numTags {
		return tagWidths[t]
	}
	return 0
}

func (t Tag) Class() Class {
	switch t {
	case U8, S8, U16, S16, U32, S32, U64, S64:
		return ClassInteger
	case F32, F64, F80:
		return ClassFloat
	case Pointer:
		return ClassPointer
	default:
		return ClassInvalid
	}
}

// Tags returns every tag in declaration order, enabled or not.
func Tags() []Tag {
	out := make([]Tag, 0, numTags)
	for t := Tag(0); t < numTags; t++ {
		out = append(out, t)
	}
	return out
}

var tagAliases = map[string]Tag{
	"uint8":       U8,
	"uint8_t":     U8,
	"uchar":       U8,
	"int8":        S8,
	"int8_t":      S8,
	"schar":       S8,
	"uint16":      U16,
	"uint16_t":    U16,
	"ushort":      U16,
	"int16":       S16,
	"int16_t":     S16,
	"short":       S16,
	"uint32":      U32,
	"uint32_t":    U32,
	"uint":        U32,
	"int32":       S32,
	"int32_t":     S32,
	"int":         S32,
	"uint64":      U64,
	"uint64_t":    U64,
	"int64":       S64,
	"int64_t":     S64,
	"float":       F32,
	"float32":     F32,
	"double":      F64,
	"float64":     F64,
	"longdouble":  F80,
	"long double": F80,
	"ptr":         Pointer,
	"void*":       Pointer,
	"void *":      Pointer,
}

// ParseTag parses a canonical tag name or a common C spelling of it.
func ParseTag(s string) (Tag, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t := Tag(0); t < numTags; t++ {
		if tagNames[t] == s {
			return t, true
		}
	}
	t, ok := tagAliases[s]
	return t, ok
}
