package marshal

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/shixiongfei/luaffi/ctype"
)

// x87 extended precision: 64-bit significand with an explicit integer bit,
// 15-bit exponent biased by 16383, sign in the top bit of the exponent word.
// Stored little-endian as significand then sign/exponent, padded to
// ctype.ExtendedSize.
const (
	extBias     = 16383
	extExpMask  = 0x7FFF
	extIntBit   = uint64(1) << 63
	extQuietBit = uint64(1) << 62
)

// encodeExtended converts f exactly; every float64 is representable.
func encodeExtended(f float64) (mant uint64, se uint16) {
	b := math.Float64bits(f)
	sign := uint16(b>>48) & 0x8000
	exp := int(b>>52) & 0x7FF
	frac := b & (1<<52 - 1)

	switch {
	case exp == 0 && frac == 0:
		return 0, sign
	case exp == 0x7FF:
		if frac == 0 {
			return extIntBit, sign | extExpMask
		}
		return extIntBit | extQuietBit | frac<<11, sign | extExpMask
	case exp == 0:
		// Subnormal doubles are normal in extended precision.
		lz := bits.LeadingZeros64(frac)
		return frac << lz, sign | uint16(15372-lz)
	default:
		return (1<<52 | frac) << 11, sign | uint16(exp+15360)
	}
}

// encodeExtendedInt converts n exactly; the 64-bit significand holds any int64.
func encodeExtendedInt(n int64) (mant uint64, se uint16) {
	if n == 0 {
		return 0, 0
	}
	mag := uint64(n)
	if n < 0 {
		mag = -mag
		se = 0x8000
	}
	lz := bits.LeadingZeros64(mag)
	return mag << lz, se | uint16(extBias+63-lz)
}

// decodeExtended rounds an extended value to the nearest float64.
func decodeExtended(mant uint64, se uint16) float64 {
	neg := se&0x8000 != 0
	exp := int(se & extExpMask)

	var f float64
	switch {
	case exp == extExpMask:
		if mant<<1 == 0 {
			f = math.Inf(1)
		} else {
			f = math.NaN()
		}
	case mant == 0:
		f = 0
	default:
		if exp == 0 {
			exp = 1
		}
		f = math.Ldexp(float64(mant), exp-extBias-63)
	}
	if neg {
		f = math.Copysign(f, -1)
	}
	return f
}

func storeExtended(addr unsafe.Pointer, f float64) {
	mant, se := encodeExtended(f)
	putExtended(addr, mant, se)
}

func storeExtendedInt(addr unsafe.Pointer, n int64) {
	mant, se := encodeExtendedInt(n)
	putExtended(addr, mant, se)
}

func putExtended(addr unsafe.Pointer, mant uint64, se uint16) {
	*(*uint64)(addr) = mant
	*(*uint16)(unsafe.Add(addr, 8)) = se
	clear(unsafe.Slice((*byte)(unsafe.Add(addr, 10)), ctype.ExtendedSize-10))
}

func loadExtended(addr unsafe.Pointer) float64 {
	mant := *(*uint64)(addr)
	se := *(*uint16)(unsafe.Add(addr, 8))
	return decodeExtended(mant, se)
}
