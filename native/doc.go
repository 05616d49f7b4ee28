// Package native provides memory that marshal slots can point into.
//
// Arena hands out stable off-heap addresses backed by anonymous mappings, for
// argument and return buffers and for ffi_cvar storage. GuestSlot places a
// slot inside the linear memory of a wazero module instance so values can be
// marshalled straight into a sandboxed guest.
//
// Neither kind of memory is managed by the Go garbage collector. Slots taken
// from an Arena are invalid after Close; slots taken from guest memory are
// invalid after the memory grows or the module is closed.
package native
