package luaffi

import (
	"sync"

	"go.uber.org/zap"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/value"
)

var (
	defaultMarshaller *marshal.Marshaller
	defaultOnce       sync.Once
)

// Default returns the process-wide marshaller. Its capabilities come from
// the environment; invalid overrides are logged and the host defaults used.
func Default() *marshal.Marshaller {
	defaultOnce.Do(func() {
		caps, err := ctype.CapabilitiesFromEnv(ctype.DefaultCapabilities())
		if err != nil {
			marshal.Logger().Warn("ignoring capability overrides", zap.Error(err))
			defaultMarshaller = marshal.New(nil)
			return
		}
		reg, err := ctype.NewRegistry(caps)
		if err != nil {
			marshal.Logger().Warn("ignoring capability overrides", zap.Error(err))
			reg = nil
		}
		defaultMarshaller = marshal.New(reg)
	})
	return defaultMarshaller
}

// NewMarshaller builds a marshaller for caps.
func NewMarshaller(caps ctype.Capabilities, opts ...marshal.Option) (*marshal.Marshaller, error) {
	reg, err := ctype.NewRegistry(caps)
	if err != nil {
		return nil, err
	}
	return marshal.New(reg, opts...), nil
}

// MarshalIn writes v into slot using the default marshaller. arg is the
// 1-based argument position reported on a type mismatch.
func MarshalIn(arg int, v value.Value, slot marshal.Slot) error {
	return Default().In(arg, v, slot)
}

// MarshalOut reads slot using the default marshaller.
func MarshalOut(slot marshal.Slot) (value.Value, bool) {
	return Default().Out(slot)
}
