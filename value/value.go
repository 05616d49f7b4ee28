package value

import (
	"math"
	"strconv"
)

// Kind is the runtime kind tag of a dynamic value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindFunction
	KindAddress
	KindHandle
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindBoolean:  "boolean",
	KindInteger:  "integer",
	KindFloat:    "float",
	KindString:   "string",
	KindFunction: "function",
	KindAddress:  "address",
	KindHandle:   "handle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a dynamic value of the embedding language. The set of values is
// closed: types outside this package become handles by embedding OpaqueBase.
type Value interface {
	Kind() Kind
	isValue()
}

// TypeName is the kind name reported in error messages. Handles report
// their subkind so "expected u32, got ffi_cfunc" says what was passed.
func TypeName(v Value) string {
	if v == nil {
		return KindNil.String()
	}
	if h, ok := v.(Opaque); ok {
		if name := h.HandleName(); name != "" {
			return name
		}
	}
	return v.Kind().String()
}

type NilValue struct{}

// Nil is the nil value.
var Nil = NilValue{}

func (NilValue) Kind() Kind       { return KindNil }
func (NilValue) String() string   { return "nil" }
func (b Boolean) Kind() Kind      { return KindBoolean }
func (n Integer) Kind() Kind      { return KindInteger }
func (f Float) Kind() Kind        { return KindFloat }
func (a Address) Kind() Kind      { return KindAddress }
func (s String) Kind() Kind       { return KindString }
func (f Function) Kind() Kind     { return KindFunction }
func (NilValue) isValue()         {}
func (Boolean) isValue()          {}
func (Integer) isValue()          {}
func (Float) isValue()            {}
func (Address) isValue()          {}
func (String) isValue()           {}
func (Function) isValue()         {}
func (b Boolean) String() string  { return strconv.FormatBool(bool(b)) }
func (n Integer) String() string  { return strconv.FormatInt(int64(n), 10) }
func (f Float) String() string    { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (a Address) String() string  { return "0x" + strconv.FormatUint(uint64(a), 16) }
func (s String) String() string   { return strconv.Quote(s.Text()) }
func (f Function) String() string { return "function: " + Address(f.Entry).String() }

type Boolean bool

type Integer int64

type Float float64

// IsIntegral reports whether f is finite and has no fractional part.
func (f Float) IsIntegral() bool {
	x := float64(f)
	return !math.IsInf(x, 0) && !math.IsNaN(x) && x == math.Trunc(x)
}

// Address is a raw native address, opaque to the embedding language.
type Address uintptr

// String is an immutable string whose backing storage ends in a NUL byte,
// so native code can read it as a C string.
type String struct {
	data string
}

// NewString copies s into NUL-terminated storage.
func NewString(s string) String {
	return String{data: s + "\x00"}
}

// Text returns the string without its terminator.
func (s String) Text() string {
	if s.data == "" {
		return ""
	}
	return s.data[:len(s.data)-1]
}

func (s String) Len() int {
	return len(s.Text())
}

// Storage returns the NUL-terminated backing storage. The empty String
// shares a single static terminator.
func (s String) Storage() string {
	if s.data == "" {
		return emptyStorage
	}
	return s.data
}

const emptyStorage = "\x00"

// Function is a function value. Entry is the native entry point, or 0 for a
// function implemented in the embedding language. Captures counts the
// closed-over values bound to it.
type Function struct {
	Name     string
	Entry    uintptr
	Captures int
}

// IsNative reports whether f can be called from native code as a plain
// function pointer.
func (f Function) IsNative() bool {
	return f.Entry != 0 && f.Captures == 0
}
