package marshal

import (
	"go.uber.org/zap"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/value"
)

// Out reads slot and returns the equivalent dynamic value. For tags the
// registry does not enable, and for a nil address, it returns value.Nil and
// false.
func (m *Marshaller) Out(slot Slot) (value.Value, bool) {
	if slot.Addr == nil {
		return value.Nil, false
	}

	switch m.reg.Class(slot.Tag) {
	case ctype.ClassInteger:
		if n, ok := loadInt(slot.Addr, slot.Tag); ok {
			return value.Integer(m.reg.WrapInt(n)), true
		}
	case ctype.ClassFloat:
		if f, ok := loadFloat(slot.Addr, slot.Tag); ok {
			return value.Float(f), true
		}
	case ctype.ClassPointer:
		p := loadPointer(slot.Addr)
		if p == 0 {
			return value.Nil, true
		}
		return value.Address(p), true
	}

	m.logger.Debug("unsupported outbound tag", zap.Stringer("tag", slot.Tag))
	return value.Nil, false
}
