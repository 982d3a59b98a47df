package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Request is a top-level request document: a single call or an ordered
// batch of calls. An empty batch is valid.
type Request struct {
	Batch bool
	Calls []Call
}

// SingleRequest wraps one call as a request document.
func SingleRequest(c Call) Request {
	return Request{Calls: []Call{c}}
}

// BatchRequest wraps calls as a batch document, preserving their order.
func BatchRequest(calls ...Call) Request {
	return Request{Batch: true, Calls: calls}
}

// DecodeRequest decodes a request document, strictly: any envelope failing
// its field-shape validation fails the whole decode.
func DecodeRequest(data []byte) (Request, error) {
	return decodeRequest(data, false)
}

// DecodeRequestLenient decodes a request document for reply-building. The
// document itself must be valid JSON shaped as an object or array, but each
// object envelope that fails validation is kept as an *InvalidCall carrying
// its salvaged id, so the caller can answer it with an InvalidRequest
// failure.
func DecodeRequestLenient(data []byte) (Request, error) {
	return decodeRequest(data, true)
}

func decodeRequest(data []byte, lenient bool) (Request, error) {
	switch firstByte(data) {
	case '{':
		call, err := decodeOneCall(data, lenient)
		if err != nil {
			return Request{}, err
		}
		return Request{Calls: []Call{call}}, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return Request{}, err
		}
		calls := make([]Call, 0, len(elems))
		for _, elem := range elems {
			call, err := decodeOneCall(elem, lenient)
			if err != nil {
				return Request{}, err
			}
			calls = append(calls, call)
		}
		return Request{Batch: true, Calls: calls}, nil
	default:
		return Request{}, &DecodeError{Kind: KindInvalidRequestShape, Detail: "request must be an object or an array"}
	}
}

// decodeOneCall decodes one envelope, downgrading validation failures to an
// InvalidCall in lenient mode. JSON syntax errors and non-object envelopes
// are never salvaged.
func decodeOneCall(data []byte, lenient bool) (Call, error) {
	call, err := DecodeCall(data)
	if err == nil || !lenient {
		return call, err
	}
	var de *DecodeError
	if errors.As(err, &de) && de.Kind != KindInvalidRequestShape {
		return salvageCall(data), nil
	}
	return nil, err
}

// EncodeRequest encodes a request document. A batch renders as a JSON array
// of envelopes in their original order.
func EncodeRequest(req Request) ([]byte, error) {
	if !req.Batch {
		if len(req.Calls) != 1 {
			return nil, &EncodeError{Detail: "a single request must hold exactly one call"}
		}
		return EncodeCall(req.Calls[0])
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, call := range req.Calls {
		if i > 0 {
			buf.WriteByte(',')
		}
		enc, err := EncodeCall(call)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
