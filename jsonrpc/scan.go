package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// scanObject walks the fields of a single JSON object once, keeping the raw
// value of every recognized field. A repeated field or a field outside
// allowed fails the scan; there is no forward-compatibility tolerance. The
// input must hold exactly one object: anything but whitespace after the
// closing brace fails the scan too.
func scanObject(data []byte, allowed []string) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("jsonrpc: expected an object, got %v", tok)
	}

	fields := make(map[string]json.RawMessage, len(allowed))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("jsonrpc: expected an object key, got %v", tok)
		}
		if !fieldAllowed(allowed, key) {
			return nil, &DecodeError{Kind: KindUnknownField, Field: key}
		}
		if _, dup := fields[key]; dup {
			return nil, &DecodeError{Kind: KindDuplicateField, Field: key}
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("jsonrpc: trailing data after envelope")
		}
		return nil, err
	}
	return fields, nil
}

// marshalNoEscape renders v as compact JSON without HTML escaping, so ids,
// methods and params containing <, > or & survive a round trip byte-exact.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func fieldAllowed(allowed []string, key string) bool {
	for _, f := range allowed {
		if f == key {
			return true
		}
	}
	return false
}

// firstByte returns the first non-whitespace byte of data, or 0 when there
// is none. Used to pick the object vs array decode path.
func firstByte(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}

// isNullValue reports whether raw is the JSON null literal.
func isNullValue(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
