package jsonrpc

import (
	"bytes"
	"encoding/json"
)

// Response is a top-level response document: a single output or an ordered
// batch of outputs. An empty batch is valid.
type Response struct {
	Batch   bool
	Outputs []Output
}

// SingleResponse wraps one output as a response document.
func SingleResponse(o Output) Response {
	return Response{Outputs: []Output{o}}
}

// BatchResponse wraps outputs as a batch document, preserving their order.
func BatchResponse(outputs ...Output) Response {
	return Response{Batch: true, Outputs: outputs}
}

// DecodeResponse decodes a response document, strictly.
func DecodeResponse(data []byte) (Response, error) {
	switch firstByte(data) {
	case '{':
		out, err := DecodeOutput(data)
		if err != nil {
			return Response{}, err
		}
		return Response{Outputs: []Output{out}}, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return Response{}, err
		}
		outputs := make([]Output, 0, len(elems))
		for _, elem := range elems {
			out, err := DecodeOutput(elem)
			if err != nil {
				return Response{}, err
			}
			outputs = append(outputs, out)
		}
		return Response{Batch: true, Outputs: outputs}, nil
	default:
		return Response{}, &DecodeError{Kind: KindInvalidResponseShape, Detail: "response must be an object or an array"}
	}
}

// EncodeResponse encodes a response document. A batch renders as a JSON
// array of envelopes in their original order.
func EncodeResponse(resp Response) ([]byte, error) {
	if !resp.Batch {
		if len(resp.Outputs) != 1 {
			return nil, &EncodeError{Detail: "a single response must hold exactly one output"}
		}
		return EncodeOutput(resp.Outputs[0])
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, out := range resp.Outputs {
		if i > 0 {
			buf.WriteByte(',')
		}
		enc, err := EncodeOutput(out)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
