package native

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/errors"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/value"
)

// Arena is a bump allocator over anonymous memory mappings. Allocations are
// zeroed, never move, and are released together by Close.
// It is safe for concurrent use.
type Arena struct {
	logger *zap.Logger
	chunks [][]byte
	cur    []byte
	off    uintptr
	chunk  int
	mapped int
	mu     sync.Mutex
	closed bool
}

// NewArena creates an arena that maps memory in multiples of chunkSize bytes.
// A chunkSize of zero or less uses the system page size.
func NewArena(chunkSize int) *Arena {
	ps := pageSize()
	if chunkSize <= 0 {
		chunkSize = ps
	}
	return &Arena{
		chunk:  roundUp(chunkSize, ps),
		logger: Logger(),
	}
}

// Alloc returns size zeroed bytes aligned to align, which must be a power of
// two no larger than the page size.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align == 0 || align&(align-1) != 0 || align > uintptr(pageSize()) {
		return nil, errors.New(errors.PhaseMemory, errors.KindInvalidInput).
			Value(align).
			Detail("alignment %d is not a power of two within a page", align).
			Build()
	}
	if size == 0 {
		size = 1
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, errors.Closed(errors.PhaseMemory, "arena")
	}

	start := alignUp(a.off, align)
	if a.cur == nil || start+size > uintptr(len(a.cur)) {
		if err := a.grow(size, align); err != nil {
			return nil, err
		}
		start = 0
	}

	p := unsafe.Pointer(&a.cur[start])
	a.off = start + size
	return p, nil
}

// grow maps a fresh chunk large enough for size bytes. Mapped chunks start on
// a page boundary, so offset zero satisfies any accepted alignment.
func (a *Arena) grow(size, align uintptr) error {
	n := roundUp(int(size), a.chunk)
	buf, err := mapAnon(n)
	if err != nil {
		return errors.AllocationFailed(errors.PhaseMemory, size, align, err)
	}
	a.chunks = append(a.chunks, buf)
	a.cur = buf
	a.off = 0
	a.mapped += n
	a.logger.Debug("arena mapped chunk", zap.Int("bytes", n), zap.Int("total", a.mapped))
	return nil
}

// Slot allocates a zeroed slot for one value of tag.
func (a *Arena) Slot(tag ctype.Tag) (marshal.Slot, error) {
	if !tag.Valid() {
		return marshal.Slot{}, errors.Unsupported(errors.PhaseMemory, "slot of tag "+tag.String())
	}
	p, err := a.Alloc(tag.Width(), tag.Width())
	if err != nil {
		return marshal.Slot{}, err
	}
	return marshal.SlotOf(p, tag), nil
}

// NewCVar allocates a scalar native variable of tag.
func (a *Arena) NewCVar(tag ctype.Tag) (*value.CVar, error) {
	s, err := a.Slot(tag)
	if err != nil {
		return nil, err
	}
	return &value.CVar{Ptr: s.Addr, Type: tag}, nil
}

// NewArray allocates an inline array of n elements of tag.
func (a *Arena) NewArray(tag ctype.Tag, n int) (*value.CVar, error) {
	if !tag.Valid() {
		return nil, errors.Unsupported(errors.PhaseMemory, "array of tag "+tag.String())
	}
	if n <= 0 {
		return nil, errors.New(errors.PhaseMemory, errors.KindInvalidInput).
			TypeName(tag.String()).
			Value(n).
			Detail("array length must be positive").
			Build()
	}
	w := tag.Width()
	p, err := a.Alloc(w*uintptr(n), w)
	if err != nil {
		return nil, err
	}
	return &value.CVar{Ptr: p, Type: tag, Len: n}, nil
}

// Mapped reports the number of bytes currently mapped by the arena.
func (a *Arena) Mapped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mapped
}

// Close unmaps every chunk. Addresses handed out by the arena must not be
// used afterwards. Closing twice is a no-op.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var firstErr error
	for _, c := range a.chunks {
		if err := unmap(c); err != nil && firstErr == nil {
			firstErr = errors.Wrap(errors.PhaseMemory, errors.KindAllocation, err, "unmap arena chunk")
		}
	}
	a.logger.Debug("arena closed", zap.Int("chunks", len(a.chunks)), zap.Int("bytes", a.mapped))
	a.chunks = nil
	a.cur = nil
	a.off = 0
	a.mapped = 0
	return firstErr
}

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

func roundUp(n, unit int) int {
	if n <= 0 {
		return unit
	}
	return (n + unit - 1) / unit * unit
}
