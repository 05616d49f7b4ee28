package marshal

import (
	"math"
	"unsafe"

	"github.com/shixiongfei/luaffi/ctype"
)

// storeInt writes n into the slot at addr, truncating to the tag's width.
// Pointer and unknown tags report false without touching memory.
func storeInt(addr unsafe.Pointer, tag ctype.Tag, n int64) bool {
	switch tag {
	case ctype.U8:
		*(*uint8)(addr) = uint8(n)
	case ctype.S8:
		*(*int8)(addr) = int8(n)
	case ctype.U16:
		*(*uint16)(addr) = uint16(n)
	case ctype.S16:
		*(*int16)(addr) = int16(n)
	case ctype.U32:
		*(*uint32)(addr) = uint32(n)
	case ctype.S32:
		*(*int32)(addr) = int32(n)
	case ctype.U64:
		*(*uint64)(addr) = uint64(n)
	case ctype.S64:
		*(*int64)(addr) = n
	case ctype.F32:
		*(*float32)(addr) = float32(n)
	case ctype.F64:
		*(*float64)(addr) = float64(n)
	case ctype.F80:
		storeExtendedInt(addr, n)
	case ctype.Pointer:
		return false
	default:
		return false
	}
	return true
}

// storeFloat writes f into the slot at addr. Integer tags receive f
// truncated toward zero.
func storeFloat(addr unsafe.Pointer, tag ctype.Tag, f float64) bool {
	switch tag {
	case ctype.U8, ctype.S8, ctype.U16, ctype.S16, ctype.U32, ctype.S32, ctype.S64:
		return storeInt(addr, tag, int64(f))
	case ctype.U64:
		// uint64 holds values int64 cannot.
		if f >= 1<<63 {
			*(*uint64)(addr) = uint64(f)
			return true
		}
		return storeInt(addr, tag, int64(f))
	case ctype.F32:
		*(*float32)(addr) = float32(f)
	case ctype.F64:
		*(*float64)(addr) = f
	case ctype.F80:
		storeExtended(addr, f)
	case ctype.Pointer:
		return false
	default:
		return false
	}
	return true
}

// loadInt reads an integer tag, sign- or zero-extending to int64. Unsigned
// 64-bit values above math.MaxInt64 wrap.
func loadInt(addr unsafe.Pointer, tag ctype.Tag) (int64, bool) {
	switch tag {
	case ctype.U8:
		return int64(*(*uint8)(addr)), true
	case ctype.S8:
		return int64(*(*int8)(addr)), true
	case ctype.U16:
		return int64(*(*uint16)(addr)), true
	case ctype.S16:
		return int64(*(*int16)(addr)), true
	case ctype.U32:
		return int64(*(*uint32)(addr)), true
	case ctype.S32:
		return int64(*(*int32)(addr)), true
	case ctype.U64:
		return int64(*(*uint64)(addr)), true
	case ctype.S64:
		return *(*int64)(addr), true
	default:
		return 0, false
	}
}

func loadFloat(addr unsafe.Pointer, tag ctype.Tag) (float64, bool) {
	switch tag {
	case ctype.F32:
		return float64(*(*float32)(addr)), true
	case ctype.F64:
		return *(*float64)(addr), true
	case ctype.F80:
		return loadExtended(addr), true
	default:
		return math.NaN(), false
	}
}

func copyRaw(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
