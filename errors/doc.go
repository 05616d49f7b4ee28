// Package errors provides structured error types for the FFI bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the argument position, the native type name, the
// dynamic value kind, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshalIn, errors.KindTypeMismatch).
//		Arg(2).
//		TypeName("u32").
//		ValueKind("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadArgument(2, "u32", "string")
//	// [marshal_in] type_mismatch at arg #2: expected u32, got string
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
