package luaffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/native"
	"github.com/shixiongfei/luaffi/value"
)

func TestMarshalRoundTrip(t *testing.T) {
	arena := native.NewArena(0)
	defer arena.Close()

	slot, err := arena.Slot(ctype.S32)
	require.NoError(t, err)
	require.NoError(t, MarshalIn(1, value.Integer(42), slot))

	v, ok := MarshalOut(slot)
	require.True(t, ok)
	assert.Equal(t, value.Integer(42), v)

	err = MarshalIn(2, value.NewString("42"), slot)
	require.Error(t, err)
	assert.Equal(t, "[marshal_in] type_mismatch at arg #2: expected s32, got string", err.Error())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestNewMarshaller(t *testing.T) {
	m, err := NewMarshaller(ctype.Capabilities{IntegerBits: 32, FloatFormat: ctype.FloatDouble})
	require.NoError(t, err)
	assert.False(t, m.Registry().Enabled(ctype.S64))
	assert.True(t, m.Registry().Enabled(ctype.U32))

	for _, bits := range []int{16, 24} {
		_, err = NewMarshaller(ctype.Capabilities{IntegerBits: bits, FloatFormat: ctype.FloatDouble})
		assert.Error(t, err, "%d-bit integers", bits)
	}
}
