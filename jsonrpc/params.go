package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ParamsShape describes which JSON shape a Params value carries.
type ParamsShape int

const (
	// ParamsAbsent means the params field was not present at all
	// (2.0 only; 1.0 requires the field).
	ParamsAbsent ParamsShape = iota
	// ParamsArray is by-position arguments.
	ParamsArray
	// ParamsObject is by-name arguments (2.0 only).
	ParamsObject
)

func (s ParamsShape) String() string {
	switch s {
	case ParamsArray:
		return "array"
	case ParamsObject:
		return "object"
	default:
		return "absent"
	}
}

// Params carries a call's arguments. The original bytes are kept so a
// decoded envelope re-encodes exactly, including object key order. The zero
// value is the absent params.
type Params struct {
	shape ParamsShape
	raw   json.RawMessage
}

// NewParams builds Params from any value that marshals to a JSON array or
// object. Any other shape is rejected.
func NewParams(v any) (Params, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Params{}, err
	}
	return decodeParams(raw)
}

// MustParams is NewParams that panics on error, for values known valid at
// compile time.
func MustParams(v any) Params {
	p, err := NewParams(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Shape returns which JSON shape the params carry.
func (p Params) Shape() ParamsShape { return p.shape }

// IsAbsent reports whether the params field was omitted entirely.
func (p Params) IsAbsent() bool { return p.shape == ParamsAbsent }

// IsArray reports whether the params are by-position.
func (p Params) IsArray() bool { return p.shape == ParamsArray }

// IsObject reports whether the params are by-name.
func (p Params) IsObject() bool { return p.shape == ParamsObject }

// Raw returns the raw JSON bytes, nil when absent.
func (p Params) Raw() json.RawMessage { return p.raw }

// Parse decodes the params into an application-defined value. A mismatch is
// reported as an *Error carrying the InvalidParams code, never a panic.
func (p Params) Parse(out any) error {
	raw := p.raw
	if p.shape == ParamsAbsent {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return NewInvalidParams(fmt.Sprintf("invalid params: %v", err))
	}
	return nil
}

// ExpectEmpty succeeds only when the params are absent or an empty array.
// Anything else, an empty object included, is an InvalidParams error naming
// the offending value.
func (p Params) ExpectEmpty() error {
	switch p.shape {
	case ParamsAbsent:
		return nil
	case ParamsArray:
		var values []json.RawMessage
		if err := json.Unmarshal(p.raw, &values); err == nil && len(values) == 0 {
			return nil
		}
	}
	e := NewInvalidParams("no parameters were expected")
	e.Data = p.raw
	return e
}

// MarshalJSON implements json.Marshaler. Absent params render as null;
// callers are expected to skip the field instead.
func (p Params) MarshalJSON() ([]byte, error) {
	if p.shape == ParamsAbsent {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Params) UnmarshalJSON(data []byte) error {
	got, err := decodeParams(data)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// decodeParams classifies a raw params value by shape. Only arrays and
// objects are structured values; everything else fails with
// KindInvalidParamsShape.
func decodeParams(raw json.RawMessage) (Params, error) {
	switch firstByte(raw) {
	case '[':
		return Params{shape: ParamsArray, raw: raw}, nil
	case '{':
		return Params{shape: ParamsObject, raw: raw}, nil
	default:
		return Params{}, &DecodeError{Kind: KindInvalidParamsShape, Field: "params", Detail: "params must be an array or an object"}
	}
}
