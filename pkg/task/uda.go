package task

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind classifies the JSON shape of a UDA value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// UDAValue holds one user-defined-attribute value. Taskwarrior lets users
// declare new attributes at runtime, so the model cannot know their types;
// the value keeps the raw JSON bytes and re-emits them unchanged, which makes
// a read-modify-write cycle lossless even for attributes this library has
// never heard of.
type UDAValue struct {
	raw json.RawMessage
}

// Constructors for building UDA values programmatically.

func UDAString(s string) UDAValue {
	b, _ := json.Marshal(s)
	return UDAValue{raw: b}
}

func UDANumber(f float64) UDAValue {
	b, _ := json.Marshal(f)
	return UDAValue{raw: b}
}

func UDABool(v bool) UDAValue {
	b, _ := json.Marshal(v)
	return UDAValue{raw: b}
}

// UDARaw wraps an arbitrary JSON document. The bytes are compacted so that
// two values differing only in insignificant whitespace compare equal.
func UDARaw(raw json.RawMessage) UDAValue {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return UDAValue{raw: bytes.Clone(raw)}
	}
	return UDAValue{raw: buf.Bytes()}
}

// Kind inspects the leading byte of the raw value.
func (v UDAValue) Kind() Kind {
	trimmed := bytes.TrimLeft(v.raw, " \t\r\n")
	if len(trimmed) == 0 {
		return KindNull
	}
	switch trimmed[0] {
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case '[':
		return KindArray
	case '{':
		return KindObject
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// Str returns the value as a string, if it is one.
func (v UDAValue) Str() (string, bool) {
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Float returns the value as a number, if it is one.
func (v UDAValue) Float() (float64, bool) {
	var f float64
	if err := json.Unmarshal(v.raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the value as a bool, if it is one.
func (v UDAValue) Bool() (bool, bool) {
	var b bool
	if err := json.Unmarshal(v.raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// Raw returns the underlying JSON bytes. Callers must not modify them.
func (v UDAValue) Raw() json.RawMessage { return v.raw }

// MarshalJSON re-emits the stored bytes verbatim.
func (v UDAValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON keeps a compacted copy of the incoming bytes.
func (v *UDAValue) UnmarshalJSON(b []byte) error {
	if !json.Valid(b) {
		return fmt.Errorf("invalid JSON value")
	}
	*v = UDARaw(b)
	return nil
}
