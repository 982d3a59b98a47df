package jsonrpc

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type idKind int

const (
	idNull idKind = iota
	idNumber
	idString
)

// ID is a request correlation identifier: a non-negative integer, a string,
// or JSON null. The zero value is the null id. ID is comparable and can be
// used as a map key; equality is structural.
//
// A responder must echo the id of the request it answers unchanged. The
// codec preserves ids byte-for-byte through a decode/encode round trip.
type ID struct {
	kind idKind
	num  uint64
	str  string
}

// NullID returns the null identifier, used for 1.0 notifications and for
// error responses to requests whose id could not be recovered.
func NullID() ID { return ID{} }

// NumberID returns a numeric identifier.
func NumberID(n uint64) ID { return ID{kind: idNumber, num: n} }

// StringID returns a string identifier.
func StringID(s string) ID { return ID{kind: idString, str: s} }

// IsNull reports whether the id is the null identifier.
func (id ID) IsNull() bool { return id.kind == idNull }

// Number returns the numeric value and whether the id is numeric.
func (id ID) Number() (uint64, bool) { return id.num, id.kind == idNumber }

// Text returns the string value and whether the id is a string.
func (id ID) Text() (string, bool) { return id.str, id.kind == idString }

// String renders the id the way it appears on the wire.
func (id ID) String() string {
	switch id.kind {
	case idNumber:
		return strconv.FormatUint(id.num, 10)
	case idString:
		return strconv.Quote(id.str)
	default:
		return "null"
	}
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idNumber:
		return strconv.AppendUint(nil, id.num, 10), nil
	case idString:
		return marshalNoEscape(id.str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	got, err := decodeID(data)
	if err != nil {
		return err
	}
	*id = got
	return nil
}

// decodeID turns a raw JSON value into an ID. Numbers must be non-negative
// integers with no fractional part; anything other than a number, string or
// null fails with KindInvalidIDShape. Whether a null id is acceptable in
// context is the caller's decision.
func decodeID(raw json.RawMessage) (ID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: "empty value"}
	}
	switch raw[0] {
	case 'n':
		if string(raw) == "null" {
			return NullID(), nil
		}
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: err.Error()}
		}
		return StringID(s), nil
	case '-':
		return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: "id must not be negative"}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if bytes.ContainsAny(raw, ".eE") {
			return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: "id must be a plain non-negative integer"}
		}
		n, err := strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: err.Error()}
		}
		return NumberID(n), nil
	}
	return ID{}, &DecodeError{Kind: KindInvalidIDShape, Field: "id", Detail: "id must be a number, a string or null"}
}
