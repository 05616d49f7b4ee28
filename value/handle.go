package value

import (
	"fmt"
	"unsafe"

	"github.com/shixiongfei/luaffi/ctype"
)

// Subkind classifies an opaque handle by its name tag.
type Subkind uint8

const (
	SubkindUnknown Subkind = iota
	SubkindCVar
	SubkindCFunc
	SubkindClosure
)

// Handle name tags.
const (
	NameCVar    = "ffi_cvar"
	NameCFunc   = "ffi_cfunc"
	NameClosure = "ffi_closure"
)

var subkindNames = [...]string{
	SubkindUnknown: "unknown",
	SubkindCVar:    NameCVar,
	SubkindCFunc:   NameCFunc,
	SubkindClosure: NameClosure,
}

func (s Subkind) String() string {
	if int(s) < len(subkindNames) {
		return subkindNames[s]
	}
	return "unknown"
}

// SubkindOf maps a handle name tag to its subkind.
func SubkindOf(name string) Subkind {
	switch name {
	case NameCVar:
		return SubkindCVar
	case NameCFunc:
		return SubkindCFunc
	case NameClosure:
		return SubkindClosure
	default:
		return SubkindUnknown
	}
}

// Opaque is a dynamic value wrapping a native resource.
type Opaque interface {
	Value
	HandleName() string
}

// OpaqueBase supplies the Value methods of a handle. Handle types declared
// outside this package embed it and add HandleName.
type OpaqueBase struct{}

func (OpaqueBase) Kind() Kind { return KindHandle }
func (OpaqueBase) isValue()   {}

// Variable is the introspection surface of an ffi_cvar handle.
type Variable interface {
	Opaque
	DeclaredTag() ctype.Tag
	// ArrayLen is the element count of an inline array, or 0 for a scalar.
	ArrayLen() int
	Address() unsafe.Pointer
}

// CodeRef is the introspection surface of ffi_cfunc and ffi_closure handles.
type CodeRef interface {
	Opaque
	CodeAddress() uintptr
}

// CVar is a native variable of a scalar tag, or an inline array of Len
// elements of that tag.
type CVar struct {
	Ptr  unsafe.Pointer
	Type ctype.Tag
	Len  int
}

func (v *CVar) Kind() Kind              { return KindHandle }
func (v *CVar) isValue()                {}
func (v *CVar) HandleName() string      { return NameCVar }
func (v *CVar) DeclaredTag() ctype.Tag  { return v.Type }
func (v *CVar) ArrayLen() int           { return v.Len }
func (v *CVar) Address() unsafe.Pointer { return v.Ptr }

// Size is the byte extent of the variable.
func (v *CVar) Size() uintptr {
	n := uintptr(1)
	if v.Len > 0 {
		n = uintptr(v.Len)
	}
	return n * v.Type.Width()
}

func (v *CVar) String() string {
	if v.Len > 0 {
		return fmt.Sprintf("cvar<%s[%d]>: %p", v.Type, v.Len, v.Ptr)
	}
	return fmt.Sprintf("cvar<%s>: %p", v.Type, v.Ptr)
}

// CFunc is a resolved native function.
type CFunc struct {
	Name  string
	Entry uintptr
}

func (f *CFunc) Kind() Kind           { return KindHandle }
func (f *CFunc) isValue()             {}
func (f *CFunc) HandleName() string   { return NameCFunc }
func (f *CFunc) CodeAddress() uintptr { return f.Entry }
func (f *CFunc) String() string       { return "cfunc " + f.Name + ": " + Address(f.Entry).String() }

// Closure is a native-callable trampoline created for an embedding-language
// function.
type Closure struct {
	Trampoline uintptr
}

func (c *Closure) Kind() Kind           { return KindHandle }
func (c *Closure) isValue()             {}
func (c *Closure) HandleName() string   { return NameClosure }
func (c *Closure) CodeAddress() uintptr { return c.Trampoline }
func (c *Closure) String() string       { return "closure: " + Address(c.Trampoline).String() }
