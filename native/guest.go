package native

import (
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/errors"
	"github.com/shixiongfei/luaffi/marshal"
)

// GuestSlot returns a slot of tag at offset in a module's linear memory.
//
// The Pointer tag is refused: a host address means nothing inside a
// 32-bit guest. The slot aliases the memory's backing buffer and becomes
// invalid when the memory grows.
func GuestSlot(mem api.Memory, offset uint32, tag ctype.Tag) (marshal.Slot, error) {
	if mem == nil {
		return marshal.Slot{}, errors.InvalidInput(errors.PhaseMemory, "nil guest memory")
	}
	if !tag.Valid() || tag == ctype.Pointer {
		return marshal.Slot{}, errors.Unsupported(errors.PhaseMemory, "guest slot of tag "+tag.String())
	}

	width := uint32(tag.Width())
	buf, ok := mem.Read(offset, width)
	if !ok || len(buf) == 0 {
		return marshal.Slot{}, errors.OutOfBounds(errors.PhaseMemory, uint64(offset), uint64(width), uint64(mem.Size()))
	}
	return marshal.SlotOf(unsafe.Pointer(&buf[0]), tag), nil
}
