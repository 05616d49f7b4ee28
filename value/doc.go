// Package value defines the dynamic values of the embedding language as seen
// by the FFI bridge.
//
// A Value carries a runtime Kind. Integers and floats are distinct kinds: a
// number's classification belongs to the embedding runtime's own value
// tagging, so Float(3) stays a float even though it is integral.
//
//	Kind       Go type        Notes
//	──────────────────────────────────────────────────────────────
//	nil        NilValue       use the Nil variable
//	boolean    Boolean
//	integer    Integer        int64
//	float      Float          float64
//	string     String         immutable, NUL-terminated storage
//	function   Function       native entry point plus captured state
//	address    Address        an already-resolved native address
//	handle     Opaque         name-tagged wrapper of a native resource
//
// # Opaque Handles
//
// Handles are identified by their name tag, not their Go type, so the
// embedding runtime can supply its own implementations:
//
//	ffi_cvar     Variable   native variable: declared tag, address, array length
//	ffi_cfunc    CodeRef    resolved function entry point
//	ffi_closure  CodeRef    resolved closure trampoline
//
// CVar, CFunc and Closure are ready-made implementations. Handle lifetime is
// owned by the embedding runtime; the bridge only reads them.
package value
