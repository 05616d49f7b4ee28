package native

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/errors"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/value"
)

// memoryModule exports one page of linear memory as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // "memory"
	0x02, 0x00, // memory 0
}

func guestMemory(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	mod, err := rt.Instantiate(ctx, memoryModule)
	require.NoError(t, err)
	mem := mod.ExportedMemory("memory")
	require.NotNil(t, mem)
	return mem
}

func TestGuestSlot_MarshalIntoGuest(t *testing.T) {
	mem := guestMemory(t)
	m := marshal.New(nil)

	s, err := GuestSlot(mem, 64, ctype.U32)
	require.NoError(t, err)
	require.NoError(t, m.In(1, value.Integer(0xCAFEBABE), s))

	got, ok := mem.ReadUint32Le(64)
	require.True(t, ok)
	assert.Equal(t, uint32(0xCAFEBABE), got)

	require.True(t, mem.WriteUint64Le(128, 0x400921FB54442D18))
	s, err = GuestSlot(mem, 128, ctype.F64)
	require.NoError(t, err)
	v, ok := m.Out(s)
	require.True(t, ok)
	assert.InDelta(t, 3.141592653589793, float64(v.(value.Float)), 0)
}

func TestGuestSlot_Bounds(t *testing.T) {
	mem := guestMemory(t)
	size := mem.Size()

	_, err := GuestSlot(mem, size-8, ctype.S64)
	require.NoError(t, err, "last eight bytes are addressable")

	_, err = GuestSlot(mem, size-4, ctype.S64)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindOutOfBounds}))

	_, err = GuestSlot(mem, size, ctype.U8)
	assert.Error(t, err)
}

func TestGuestSlot_Rejects(t *testing.T) {
	mem := guestMemory(t)

	_, err := GuestSlot(mem, 0, ctype.Pointer)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindUnsupported}))

	_, err = GuestSlot(mem, 0, ctype.Tag(42))
	assert.Error(t, err)

	_, err = GuestSlot(nil, 0, ctype.U8)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindInvalidInput}))
}
