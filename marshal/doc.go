// Package marshal converts dynamic values to native memory and back.
//
// A Slot is a raw address paired with the ctype.Tag describing the bytes at
// that address. The Marshaller never allocates or frees slot memory: the
// caller guarantees the address is valid for the tag's width for the
// duration of the call. Nothing here checks bounds.
//
//	┌──────────────┐   In    ┌─────────────┐
//	│ value.Value  │ ──────→ │ Slot (addr) │
//	│              │ ←────── │             │
//	└──────────────┘   Out   └─────────────┘
//
// # Inbound
//
// In dispatches on the slot tag first. Pointer slots are filled by the
// pointer resolver, which accepts nil, integers, strings, native functions
// without captured state, raw addresses, and ffi_cvar/ffi_cfunc/ffi_closure
// handles. Scalar slots dispatch on the value kind:
//
//	boolean  → integer path (0 or 1)
//	integer  → integer path (two's-complement truncation to the tag)
//	float    → float path (integral values only for integer tags)
//	ffi_cvar → raw copy when the variable's tag equals the slot tag
//
// Anything else is rejected with an *errors.Error of kind type_mismatch
// naming the argument position, the expected type, and the value kind.
// A rejected value never modifies the slot.
//
// # Outbound
//
// Out reads the slot at native width. Integer tags produce value.Integer,
// float tags value.Float, and pointer slots value.Address (or value.Nil for
// a null pointer). Tags the registry does not enable produce value.Nil and
// false; a value is always returned.
//
// # Unsafe Boundary
//
// Raw memory access is confined to resolve.go, scalar.go and extended.go.
//
// # Thread Safety
//
// A Marshaller is immutable after New and safe for concurrent use. Concurrent
// calls touching the same slot memory must be synchronized by the caller.
package marshal
