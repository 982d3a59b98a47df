package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is a JSON-RPC error code. Codes between -32768 and -32000 are
// reserved by the specification; everything else is application-defined.
type ErrorCode int64

const (
	// CodeParseError: the server received invalid JSON.
	CodeParseError ErrorCode = -32700
	// CodeInvalidRequest: the JSON sent is not a valid request object.
	CodeInvalidRequest ErrorCode = -32600
	// CodeMethodNotFound: the method does not exist or is not available.
	CodeMethodNotFound ErrorCode = -32601
	// CodeInvalidParams: invalid method parameters.
	CodeInvalidParams ErrorCode = -32602
	// CodeInternalError: internal JSON-RPC error.
	CodeInternalError ErrorCode = -32603

	// CodeServerErrorMin and CodeServerErrorMax bound the range reserved
	// for implementation-defined server errors.
	CodeServerErrorMin ErrorCode = -32099
	CodeServerErrorMax ErrorCode = -32000
)

// DefaultMessage returns the conventional human-readable message for a
// reserved code, or "Server error" for anything else.
func (c ErrorCode) DefaultMessage() string {
	switch c {
	case CodeParseError:
		return "Parse error"
	case CodeInvalidRequest:
		return "Invalid request"
	case CodeMethodNotFound:
		return "Method not found"
	case CodeInvalidParams:
		return "Invalid params"
	case CodeInternalError:
		return "Internal error"
	default:
		return "Server error"
	}
}

// Error is the wire-level JSON-RPC error object. It is immutable by
// convention once placed in a Failure.
type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewError builds an error object with the given code and its conventional
// message.
func NewError(code ErrorCode) *Error {
	return &Error{Code: code, Message: code.DefaultMessage()}
}

// NewParseError reports invalid JSON received by the server.
func NewParseError() *Error { return NewError(CodeParseError) }

// NewInvalidRequest reports a request object that matched neither dialect.
func NewInvalidRequest() *Error { return NewError(CodeInvalidRequest) }

// NewMethodNotFound reports an unknown method.
func NewMethodNotFound() *Error { return NewError(CodeMethodNotFound) }

// NewInternalError reports an internal server failure.
func NewInternalError() *Error { return NewError(CodeInternalError) }

// NewInvalidParams reports unusable parameters, with a description of what
// was wrong.
func NewInvalidParams(detail string) *Error {
	return &Error{Code: CodeInvalidParams, Message: detail}
}

// NewServerError builds an implementation-defined error. The code should lie
// in the reserved server error range.
func NewServerError(code ErrorCode, message string) *Error {
	if message == "" {
		message = code.DefaultMessage()
	}
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: %s (code %d)", e.Message, e.Code)
}

// errorObjectFields is the closed schema of the wire error object.
var errorObjectFields = []string{"code", "message", "data"}

// decodeErrorObject decodes the error member of a failure response. The
// object itself follows the same strict rules as envelopes: no duplicate or
// unknown fields, code and message required.
func decodeErrorObject(raw json.RawMessage) (*Error, error) {
	if firstByte(raw) != '{' {
		return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "error", Detail: "error must be an object"}
	}
	fields, err := scanObject(raw, errorObjectFields)
	if err != nil {
		return nil, err
	}
	codeRaw, ok := fields["code"]
	if !ok {
		return nil, &DecodeError{Kind: KindMissingField, Field: "code"}
	}
	var code ErrorCode
	if err := json.Unmarshal(codeRaw, &code); err != nil {
		return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "code", Detail: "code must be an integer"}
	}
	msgRaw, ok := fields["message"]
	if !ok {
		return nil, &DecodeError{Kind: KindMissingField, Field: "message"}
	}
	var message string
	if err := json.Unmarshal(msgRaw, &message); err != nil {
		return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "message", Detail: "message must be a string"}
	}
	return &Error{Code: code, Message: message, Data: fields["data"]}, nil
}
