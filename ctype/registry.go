package ctype

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/shixiongfei/luaffi/errors"
)

// FloatFormat names the float representation of the embedding runtime.
//
// FloatExtended enables the f80 tag. Dynamic floats are float64, so values
// stored into an f80 slot are exact while values read back from one are
// rounded to the nearest float64.
type FloatFormat string

const (
	FloatDouble   FloatFormat = "double"
	FloatExtended FloatFormat = "extended"
)

// Environment variables consulted by CapabilitiesFromEnv.
const (
	EnvIntegerBits = "LUAFFI_INTEGER_BITS"
	EnvFloatFormat = "LUAFFI_FLOAT_FORMAT"
)

// Capabilities describes what the embedding runtime's numeric values can
// hold without loss.
type Capabilities struct {
	IntegerBits int         `json:"integer_bits" validate:"oneof=32 64" jsonschema:"enum=32,enum=64,default=64,description=Bit width of the runtime integer type"`
	FloatFormat FloatFormat `json:"float_format" validate:"oneof=double extended" jsonschema:"enum=double,enum=extended,default=double,description=Representation of the runtime float type"`
}

// DefaultCapabilities matches a runtime whose integers are int64 and whose
// floats are float64.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		IntegerBits: 64,
		FloatFormat: FloatDouble,
	}
}

var validate = validator.New()

// Validate checks the capability document against its struct tags.
func (c Capabilities) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "validate capabilities")
	}
	return nil
}

// CapabilitiesFromEnv returns base with any LUAFFI_* overrides applied.
func CapabilitiesFromEnv(base Capabilities) (Capabilities, error) {
	if v, ok := os.LookupEnv(EnvIntegerBits); ok {
		bits, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return base, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Value(v).
				Cause(err).
				Detail("parse %s=%q", EnvIntegerBits, v).
				Build()
		}
		base.IntegerBits = bits
	}
	if v, ok := os.LookupEnv(EnvFloatFormat); ok {
		base.FloatFormat = FloatFormat(strings.ToLower(strings.TrimSpace(v)))
	}
	return base, base.Validate()
}

// CapabilitiesSchema returns the JSON schema of the capability document.
func CapabilitiesSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Capabilities{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "marshal capability schema")
	}
	return data, nil
}

// Registry answers width and classification queries for the tags enabled by
// a set of capabilities. It is immutable and safe for concurrent use.
type Registry struct {
	caps    Capabilities
	enabled [numTags]bool
}

// NewRegistry negotiates the enabled tag set for caps.
func NewRegistry(caps Capabilities) (*Registry, error) {
	if err := caps.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{caps: caps}
	for _, t := range Tags() {
		r.enabled[t] = caps.allows(t)
	}
	return r, nil
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(DefaultCapabilities())
	if err != nil {
		panic(err)
	}
	return r
}()

// DefaultRegistry returns the registry for DefaultCapabilities.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (c Capabilities) allows(t Tag) bool {
	switch t {
	case U8, S8, U16, S16, F32, F64, Pointer:
		return true
	case U32, S32:
		return c.IntegerBits >= 32
	case U64, S64:
		return c.IntegerBits >= 64
	case F80:
		return c.FloatFormat == FloatExtended
	default:
		return false
	}
}

func (r *Registry) Capabilities() Capabilities {
	return r.caps
}

// Enabled reports whether t survived capability negotiation.
func (r *Registry) Enabled(t Tag) bool {
	return t < numTags && r.enabled[t]
}

// Class returns ClassInvalid for disabled tags.
func (r *Registry) Class(t Tag) Class {
	if !r.Enabled(t) {
		return ClassInvalid
	}
	return t.Class()
}

// Width returns 0 for disabled tags.
func (r *Registry) Width(t Tag) uintptr {
	if !r.Enabled(t) {
		return 0
	}
	return t.Width()
}

// Tags returns the enabled tags in declaration order.
func (r *Registry) Tags() []Tag {
	out := make([]Tag, 0, numTags)
	for t := Tag(0); t < numTags; t++ {
		if r.enabled[t] {
			out = append(out, t)
		}
	}
	return out
}

// WrapInt reduces n to the runtime's integer width with two's-complement
// wraparound, the way a runtime with narrower integers would store it.
func (r *Registry) WrapInt(n int64) int64 {
	if r.caps.IntegerBits == 32 {
		return int64(int32(n))
	}
	return n
}
