package marshal

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/shixiongfei/luaffi/ctype"
)

// Slot is a native memory location and the tag describing its contents.
type Slot struct {
	Addr unsafe.Pointer
	Tag  ctype.Tag
}

// SlotOf returns the slot at p holding a value of tag.
func SlotOf(p unsafe.Pointer, tag ctype.Tag) Slot {
	return Slot{Addr: p, Tag: tag}
}

// Width is the number of bytes the slot's tag occupies.
func (s Slot) Width() uintptr {
	return s.Tag.Width()
}

// Marshaller converts between dynamic values and native slots for the tags
// enabled in its registry.
type Marshaller struct {
	reg            *ctype.Registry
	logger         *zap.Logger
	truncateFloats bool
}

// Option configures a Marshaller.
type Option func(*Marshaller)

// WithLogger overrides the package logger for one Marshaller.
func WithLogger(l *zap.Logger) Option {
	return func(m *Marshaller) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithFloatTruncation lets non-integral floats into integer slots, truncating
// toward zero as a C cast would. By default they are rejected.
func WithFloatTruncation() Option {
	return func(m *Marshaller) {
		m.truncateFloats = true
	}
}

// New returns a Marshaller for reg, or for ctype.DefaultRegistry when reg is nil.
func New(reg *ctype.Registry, opts ...Option) *Marshaller {
	if reg == nil {
		reg = ctype.DefaultRegistry()
	}
	m := &Marshaller{
		reg:    reg,
		logger: Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Marshaller) Registry() *ctype.Registry {
	return m.reg
}
