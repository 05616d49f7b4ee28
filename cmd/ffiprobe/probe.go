package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/native"
	"github.com/shixiongfei/luaffi/value"
)

// parseLiteral reads a value literal: nil, true, false, a decimal integer,
// a float, a quoted string, or a 0x-prefixed address.
func parseLiteral(s string) (value.Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil, fmt.Errorf("empty literal")
	case "nil":
		return value.Nil, nil
	case "true":
		return value.Boolean(true), nil
	case "false":
		return value.Boolean(false), nil
	case "inf", "+inf":
		return value.Float(math.Inf(1)), nil
	case "-inf":
		return value.Float(math.Inf(-1)), nil
	case "nan":
		return value.Float(math.NaN()), nil
	}

	if s[0] == '"' || s[0] == '\'' || s[0] == '`' {
		text, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("string literal %s: %w", s, err)
		}
		return value.NewString(text), nil
	}

	if rest, ok := cutHexPrefix(s); ok {
		addr, err := strconv.ParseUint(rest, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("address literal %s: %w", s, err)
		}
		return value.Address(uintptr(addr)), nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Integer(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f), nil
	}
	return nil, fmt.Errorf("unrecognized literal %q", s)
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}

type probeResult struct {
	tag   ctype.Tag
	input value.Value
	raw   []byte
	out   value.Value
	ok    bool
}

// probe marshals v into a fresh arena slot of tag and reads it back.
func probe(m *marshal.Marshaller, arena *native.Arena, tag ctype.Tag, v value.Value) (probeResult, error) {
	slot, err := arena.Slot(tag)
	if err != nil {
		return probeResult{}, err
	}
	if err := m.In(1, v, slot); err != nil {
		return probeResult{}, err
	}

	raw := make([]byte, slot.Width())
	copy(raw, unsafe.Slice((*byte)(slot.Addr), slot.Width()))

	out, ok := m.Out(slot)
	return probeResult{tag: tag, input: v, raw: raw, out: out, ok: ok}, nil
}

func (r probeResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tag     %s (%d bytes, %s)\n", r.tag, r.tag.Width(), r.tag.Class())
	fmt.Fprintf(&b, "input   %v\n", r.input)
	fmt.Fprintf(&b, "bytes   % x\n", r.raw)
	if r.ok {
		fmt.Fprintf(&b, "output  %v\n", r.out)
	} else {
		b.WriteString("output  unsupported\n")
	}
	return b.String()
}
