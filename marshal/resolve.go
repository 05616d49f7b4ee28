package marshal

import (
	"unsafe"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/value"
)

// resolvePointer extracts the native address denoted by v. It reports false
// when v cannot denote a pointer; it never fails any other way.
func resolvePointer(v value.Value) (uintptr, bool) {
	switch x := v.(type) {
	case nil, value.NilValue:
		return 0, true
	case value.Integer:
		return uintptr(x), true
	case value.String:
		// Native code must treat this memory as read-only.
		return uintptr(unsafe.Pointer(unsafe.StringData(x.Storage()))), true
	case value.Function:
		// Functions with captured state need a closure trampoline.
		if !x.IsNative() {
			return 0, false
		}
		return x.Entry, true
	case value.Address:
		return uintptr(x), true
	case value.Opaque:
		return resolveHandle(x)
	default:
		return 0, false
	}
}

func resolveHandle(h value.Opaque) (uintptr, bool) {
	switch value.SubkindOf(h.HandleName()) {
	case value.SubkindCVar:
		cv, ok := h.(value.Variable)
		if !ok || cv.Address() == nil {
			return 0, false
		}
		switch {
		case cv.ArrayLen() > 0:
			return uintptr(cv.Address()), true
		case cv.DeclaredTag() == ctype.Pointer:
			return *(*uintptr)(cv.Address()), true
		default:
			return 0, false
		}
	case value.SubkindCFunc, value.SubkindClosure:
		code, ok := h.(value.CodeRef)
		if !ok {
			return 0, false
		}
		return code.CodeAddress(), true
	default:
		return 0, false
	}
}

func storePointer(addr unsafe.Pointer, p uintptr) {
	*(*uintptr)(addr) = p
}

func loadPointer(addr unsafe.Pointer) uintptr {
	return *(*uintptr)(addr)
}
