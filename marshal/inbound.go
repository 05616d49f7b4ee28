package marshal

import (
	"go.uber.org/zap"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/errors"
	"github.com/shixiongfei/luaffi/value"
)

// In writes v into slot. arg is the 1-based position of v in the native
// call and is reported in the error when v is not representable as the
// slot's type. On error the slot is left untouched.
func (m *Marshaller) In(arg int, v value.Value, slot Slot) error {
	if slot.Addr == nil {
		return errors.New(errors.PhaseMarshalIn, errors.KindInvalidInput).
			Arg(arg).
			TypeName(slot.Tag.String()).
			Detail("nil slot address").
			Build()
	}

	if m.marshalIn(v, slot) {
		return nil
	}

	kind := value.TypeName(v)
	m.logger.Debug("rejected inbound value",
		zap.Int("arg", arg),
		zap.Stringer("tag", slot.Tag),
		zap.String("kind", kind))

	return errors.BadArgument(arg, slot.Tag.String(), kind)
}

func (m *Marshaller) marshalIn(v value.Value, slot Slot) bool {
	if !m.reg.Enabled(slot.Tag) {
		return false
	}

	if slot.Tag == ctype.Pointer {
		p, ok := resolvePointer(v)
		if !ok {
			return false
		}
		storePointer(slot.Addr, p)
		return true
	}

	switch x := v.(type) {
	case value.Boolean:
		var n int64
		if x {
			n = 1
		}
		return storeInt(slot.Addr, slot.Tag, n)
	case value.Integer:
		return storeInt(slot.Addr, slot.Tag, int64(x))
	case value.Float:
		if m.reg.Class(slot.Tag) == ctype.ClassInteger && !m.truncateFloats && !x.IsIntegral() {
			return false
		}
		return storeFloat(slot.Addr, slot.Tag, float64(x))
	case value.Opaque:
		return m.copyVariable(x, slot)
	default:
		return false
	}
}

// copyVariable copies a scalar ffi_cvar of exactly the slot's tag byte for
// byte, without passing through the number domain.
func (m *Marshaller) copyVariable(h value.Opaque, slot Slot) bool {
	if value.SubkindOf(h.HandleName()) != value.SubkindCVar {
		return false
	}
	cv, ok := h.(value.Variable)
	if !ok || cv.Address() == nil || cv.ArrayLen() > 0 || cv.DeclaredTag() != slot.Tag {
		return false
	}
	copyRaw(slot.Addr, cv.Address(), m.reg.Width(slot.Tag))
	return true
}
