package jsonrpc

import "fmt"

// DecodeKind classifies why a document or envelope failed to decode.
type DecodeKind string

const (
	// KindDuplicateField marks a top-level field that appeared twice.
	KindDuplicateField DecodeKind = "duplicate field"
	// KindUnknownField marks a top-level field outside the closed schema.
	KindUnknownField DecodeKind = "unknown field"
	// KindMissingField marks a field both dialects require but that was absent.
	KindMissingField DecodeKind = "missing field"
	// KindInvalidIDShape marks an id that is not a non-negative integer,
	// a string, or null.
	KindInvalidIDShape DecodeKind = "invalid id shape"
	// KindInvalidParamsShape marks params that are neither an array nor an
	// object.
	KindInvalidParamsShape DecodeKind = "invalid params shape"
	// KindIncompatibleDialect marks a field combination that matches
	// neither the 1.0 nor the 2.0 rules.
	KindIncompatibleDialect DecodeKind = "incompatible dialect"
	// KindInvalidRequestShape marks a request document that is neither an
	// object nor an array.
	KindInvalidRequestShape DecodeKind = "invalid request shape"
	// KindInvalidResponseShape marks a response document that is neither an
	// object nor an array.
	KindInvalidResponseShape DecodeKind = "invalid response shape"
)

// DecodeError reports a protocol-level decode failure. JSON syntax errors
// from the underlying parser are returned as-is, not wrapped in DecodeError.
type DecodeError struct {
	Kind   DecodeKind
	Field  string // offending field name, when one can be blamed
	Detail string
}

func (e *DecodeError) Error() string {
	msg := "jsonrpc: " + string(e.Kind)
	if e.Field != "" {
		msg += fmt.Sprintf(" %q", e.Field)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// EncodeError reports an attempt to encode a value that violates its
// dialect's wire rules, such as a 1.0 call holding object params.
type EncodeError struct {
	Detail string
}

func (e *EncodeError) Error() string {
	return "jsonrpc: " + e.Detail
}
