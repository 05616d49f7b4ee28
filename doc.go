// Package luaffi converts values of a dynamically typed embedding language to
// and from raw native memory of a statically known scalar type.
//
// # Architecture Overview
//
//	luaffi/            Root package with the process-wide default marshaller
//	├── ctype/         Scalar type tags, widths and capability negotiation
//	├── value/         Dynamic values and opaque native handles
//	├── marshal/       Pointer resolution, scalar loads/stores, In and Out
//	├── native/        Off-heap arena and wazero guest-memory slots
//	├── errors/        Structured error types
//	└── cmd/ffiprobe/  Command-line probe for the marshaller
//
// # Quick Start
//
// Pass an argument to a native call and read its result back:
//
//	arena := native.NewArena(0)
//	defer arena.Close()
//
//	slot, err := arena.Slot(ctype.S32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := luaffi.MarshalIn(1, value.Integer(42), slot); err != nil {
//	    log.Fatal(err) // [marshal_in] type_mismatch at arg #1: ...
//	}
//
//	v, ok := luaffi.MarshalOut(slot)
//	fmt.Println(v, ok) // 42 true
//
// # Capabilities
//
// Which tags are available depends on what the embedding runtime's numbers can
// hold. The 32-bit integer pair needs 32-bit integers, the 64-bit pair needs
// 64-bit integers, and f80 needs extended floats:
//
//	m, err := luaffi.NewMarshaller(ctype.Capabilities{
//	    IntegerBits: 32,
//	    FloatFormat: ctype.FloatDouble,
//	})
//
// The default marshaller reads LUAFFI_INTEGER_BITS and LUAFFI_FLOAT_FORMAT
// once, on first use.
//
// # Pointers
//
// A pointer slot accepts nil, integers, strings, native functions without
// captures, addresses, and the ffi_cvar, ffi_cfunc and ffi_closure handles.
// A cvar holding an array decays to its own address; a cvar holding a pointer
// yields the pointer it stores.
package luaffi
