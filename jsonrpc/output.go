package jsonrpc

import "encoding/json"

// outputFields is the closed schema of a response envelope.
var outputFields = []string{"jsonrpc", "result", "error", "id"}

// Output is a single response-side envelope: a success or a failure.
type Output interface {
	// OutputDialect returns the wire dialect of the envelope.
	OutputDialect() Dialect
	// OutputID returns the correlation id. Responses always carry one,
	// null included.
	OutputID() ID
	// Unpack returns the success result or the failure error; exactly one
	// is non-nil for a decoded output.
	Unpack() (json.RawMessage, *Error)

	isOutput()
}

// NewOutput builds the response envelope for a handler outcome: a Failure
// when err is non-nil, a Success over result otherwise. This is the single
// constructor entry point for reply-building.
func NewOutput(dialect Dialect, id ID, result json.RawMessage, err *Error) Output {
	if err != nil {
		return &Failure{Dialect: dialect, Err: err, ID: id}
	}
	return &Success{Dialect: dialect, Result: result, ID: id}
}

// NewInvalidRequestOutput builds the Failure used to answer a request that
// failed to decode, correlated by whatever id was salvaged.
func NewInvalidRequestOutput(dialect Dialect, id ID) Output {
	return &Failure{Dialect: dialect, Err: NewInvalidRequest(), ID: id}
}

// Success is a response carrying a result. A nil Result encodes as null.
type Success struct {
	Dialect Dialect
	Result  json.RawMessage
	ID      ID
}

func (s *Success) OutputDialect() Dialect            { return s.Dialect }
func (s *Success) OutputID() ID                      { return s.ID }
func (s *Success) Unpack() (json.RawMessage, *Error) { return s.Result, nil }
func (s *Success) isOutput()                         {}

// MarshalJSON implements json.Marshaler. A 1.0 success carries an explicit
// "error":null companion field; 2.0 omits the error field entirely.
func (s *Success) MarshalJSON() ([]byte, error) {
	switch s.Dialect {
	case V2:
		return marshalNoEscape(struct {
			Jsonrpc string          `json:"jsonrpc"`
			Result  json.RawMessage `json:"result"`
			ID      ID              `json:"id"`
		}{versionTag, s.Result, s.ID})
	case V1:
		return marshalNoEscape(struct {
			Result json.RawMessage `json:"result"`
			Error  *Error          `json:"error"`
			ID     ID              `json:"id"`
		}{s.Result, nil, s.ID})
	default:
		return nil, &EncodeError{Detail: "success has no dialect"}
	}
}

// Failure is a response carrying an error object.
type Failure struct {
	Dialect Dialect
	Err     *Error
	ID      ID
}

func (f *Failure) OutputDialect() Dialect            { return f.Dialect }
func (f *Failure) OutputID() ID                      { return f.ID }
func (f *Failure) Unpack() (json.RawMessage, *Error) { return nil, f.Err }
func (f *Failure) isOutput()                         {}

// MarshalJSON implements json.Marshaler. A 1.0 failure carries an explicit
// "result":null companion field; 2.0 omits the result field entirely.
func (f *Failure) MarshalJSON() ([]byte, error) {
	if f.Err == nil {
		return nil, &EncodeError{Detail: "failure requires an error object"}
	}
	switch f.Dialect {
	case V2:
		return marshalNoEscape(struct {
			Jsonrpc string `json:"jsonrpc"`
			Error   *Error `json:"error"`
			ID      ID     `json:"id"`
		}{versionTag, f.Err, f.ID})
	case V1:
		return marshalNoEscape(struct {
			Error  *Error          `json:"error"`
			Result json.RawMessage `json:"result"`
			ID     ID              `json:"id"`
		}{f.Err, nil, f.ID})
	default:
		return nil, &EncodeError{Detail: "failure has no dialect"}
	}
}

// DecodeOutput decodes a single response envelope, strictly.
func DecodeOutput(data []byte) (Output, error) {
	if firstByte(data) != '{' {
		return nil, &DecodeError{Kind: KindInvalidResponseShape, Detail: "output must be an object"}
	}
	fields, err := scanObject(data, outputFields)
	if err != nil {
		return nil, err
	}
	return outputFromFields(fields)
}

// EncodeOutput encodes a single response envelope in its dialect's field
// order.
func EncodeOutput(o Output) ([]byte, error) {
	switch out := o.(type) {
	case *Success:
		return out.MarshalJSON()
	case *Failure:
		return out.MarshalJSON()
	default:
		return nil, &EncodeError{Detail: "unknown output type"}
	}
}

// outputFromFields runs the dialect inference and validation over the set
// of fields present in a response envelope.
func outputFromFields(fields map[string]json.RawMessage) (Output, error) {
	dialect, err := dialectOf(fields)
	if err != nil {
		return nil, err
	}

	// The id is required on both dialects, even when null.
	idRaw, ok := fields["id"]
	if !ok {
		return nil, &DecodeError{Kind: KindMissingField, Field: "id"}
	}
	id, err := decodeID(idRaw)
	if err != nil {
		return nil, err
	}

	resultRaw, resultPresent := fields["result"]
	errorRaw, errorPresent := fields["error"]

	switch dialect {
	case V2:
		// 2.0: exactly one of result/error, judged by field presence.
		switch {
		case resultPresent && !errorPresent:
			return &Success{Dialect: V2, Result: resultRaw, ID: id}, nil
		case errorPresent && !resultPresent:
			errObj, err := decodeErrorObject(errorRaw)
			if err != nil {
				return nil, err
			}
			return &Failure{Dialect: V2, Err: errObj, ID: id}, nil
		default:
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Detail: "a 2.0 response requires exactly one of result and error"}
		}
	default:
		// 1.0: both fields must be physically present, exactly one null.
		if !resultPresent || !errorPresent {
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Detail: "a 1.0 response requires both result and error fields"}
		}
		resultNull := isNullValue(resultRaw)
		errorNull := isNullValue(errorRaw)
		switch {
		case !resultNull && errorNull:
			return &Success{Dialect: V1, Result: resultRaw, ID: id}, nil
		case resultNull && !errorNull:
			errObj, err := decodeErrorObject(errorRaw)
			if err != nil {
				return nil, err
			}
			return &Failure{Dialect: V1, Err: errObj, ID: id}, nil
		default:
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Detail: "a 1.0 response requires exactly one of result and error to be null"}
		}
	}
}
