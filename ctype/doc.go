// Package ctype is the registry of native scalar types the bridge can marshal.
//
// A Tag names one native representation: unsigned and signed integers of
// 1, 2, 4 and 8 bytes, single, double and extended floats, and the pointer
// type. Each tag has a fixed byte width and a class (integer, float, pointer).
//
//	Tag      Width   Class
//	───────────────────────
//	u8/s8    1       integer
//	u16/s16  2       integer
//	u32/s32  4       integer
//	u64/s64  8       integer
//	f32      4       float
//	f64      8       float
//	f80      16      float (x87 extended, 10 significant bytes)
//	pointer  8       pointer (4 on 32-bit hosts)
//
// # Capability Negotiation
//
// Not every tag is usable with every embedding runtime. A Registry is built
// once from Capabilities describing the runtime's integer width and float
// format, and tags the runtime cannot represent losslessly are disabled:
//
//	reg, err := ctype.NewRegistry(ctype.Capabilities{
//	    IntegerBits: 32,
//	    FloatFormat: ctype.FloatDouble,
//	})
//	reg.Enabled(ctype.S64) // false
//
// The 32-bit pair is enabled when IntegerBits >= 32, the 64-bit pair when
// IntegerBits >= 64, and f80 only with FloatFormat "extended". Capabilities
// may be overridden from the environment with LUAFFI_INTEGER_BITS and
// LUAFFI_FLOAT_FORMAT.
package ctype
