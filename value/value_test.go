package value

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/shixiongfei/luaffi/ctype"
)

type tableValue struct{}

func (tableValue) Kind() Kind { return Kind(42) }
func (tableValue) isValue()   {}

type foreignHandle struct{ OpaqueBase }

func (foreignHandle) HandleName() string { return "" }

func TestKinds(t *testing.T) {
	var x int32
	tests := []struct {
		v    Value
		kind Kind
		name string
	}{
		{Nil, KindNil, "nil"},
		{Boolean(true), KindBoolean, "boolean"},
		{Integer(1), KindInteger, "integer"},
		{Float(1), KindFloat, "float"},
		{NewString("x"), KindString, "string"},
		{Function{Entry: 1}, KindFunction, "function"},
		{Address(0x1000), KindAddress, "address"},
		{&CVar{Ptr: unsafe.Pointer(&x), Type: ctype.S32}, KindHandle, "ffi_cvar"},
		{&CFunc{Entry: 1}, KindHandle, "ffi_cfunc"},
		{&Closure{Trampoline: 1}, KindHandle, "ffi_closure"},
		{foreignHandle{}, KindHandle, "handle"},
		{tableValue{}, Kind(42), "unknown"},
		{nil, KindNil, "nil"},
	}
	for _, tt := range tests {
		if tt.v != nil {
			assert.Equal(t, tt.kind, tt.v.Kind())
		}
		assert.Equal(t, tt.name, TypeName(tt.v))
	}
}

func TestFloat_IsIntegral(t *testing.T) {
	tests := []struct {
		f    float64
		want bool
	}{
		{3, true},
		{-7, true},
		{0, true},
		{3.9, false},
		{-0.5, false},
		{1e300, true},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Float(tt.f).IsIntegral(), "%v", tt.f)
	}
}

func TestString_Storage(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, "hello", s.Text())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "hello\x00", s.Storage())
	assert.Equal(t, `"hello"`, s.String())

	var empty String
	assert.Equal(t, "", empty.Text())
	assert.Equal(t, "\x00", empty.Storage())

	embedded := NewString("a\x00b")
	assert.Equal(t, "a\x00b", embedded.Text())
	assert.Equal(t, "a\x00b\x00", embedded.Storage())
}

func TestFunction_IsNative(t *testing.T) {
	assert.True(t, Function{Entry: 0x401000}.IsNative())
	assert.False(t, Function{Entry: 0x401000, Captures: 1}.IsNative())
	assert.False(t, Function{Name: "script"}.IsNative())
}

func TestSubkindOf(t *testing.T) {
	assert.Equal(t, SubkindCVar, SubkindOf(NameCVar))
	assert.Equal(t, SubkindCFunc, SubkindOf(NameCFunc))
	assert.Equal(t, SubkindClosure, SubkindOf(NameClosure))
	assert.Equal(t, SubkindUnknown, SubkindOf("ffi_ctype"))
	assert.Equal(t, "ffi_closure", SubkindClosure.String())
}

func TestCVar_Size(t *testing.T) {
	var buf [10]uint16
	arr := &CVar{Ptr: unsafe.Pointer(&buf[0]), Type: ctype.U16, Len: 10}
	assert.Equal(t, uintptr(20), arr.Size())
	assert.Contains(t, arr.String(), "u16[10]")

	scalar := &CVar{Ptr: unsafe.Pointer(&buf[0]), Type: ctype.F64}
	assert.Equal(t, uintptr(8), scalar.Size())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "-12", Integer(-12).String())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "0xdead", Address(0xdead).String())
	assert.Equal(t, "nil", Nil.String())
}

func TestOpaqueBase(t *testing.T) {
	var v Value = foreignHandle{}
	assert.Equal(t, KindHandle, v.Kind())

	h, ok := v.(Opaque)
	assert.True(t, ok)
	assert.Equal(t, SubkindUnknown, SubkindOf(h.HandleName()))
}
