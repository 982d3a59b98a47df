package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// versionTag is the only version string JSON-RPC 2.0 admits.
const versionTag = "2.0"

// Dialect selects which wire-format rule set an envelope follows.
type Dialect int

const (
	// V1 is JSON-RPC 1.0: no jsonrpc tag on the wire, params must be an
	// array, responses carry both result and error with the inactive one
	// set to null.
	V1 Dialect = iota + 1
	// V2 is JSON-RPC 2.0: envelopes carry "jsonrpc":"2.0", params may be
	// an array or an object, responses carry exactly one of result/error.
	V2
)

func (d Dialect) String() string {
	switch d {
	case V1:
		return "1.0"
	case V2:
		return "2.0"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// dialectOf reads the optional jsonrpc tag from a scanned envelope. Absence
// means 1.0; any string other than "2.0" matches neither specification.
func dialectOf(fields map[string]json.RawMessage) (Dialect, error) {
	raw, ok := fields["jsonrpc"]
	if !ok {
		return V1, nil
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return 0, &DecodeError{Kind: KindIncompatibleDialect, Field: "jsonrpc", Detail: "version tag must be a string"}
	}
	if tag != versionTag {
		return 0, &DecodeError{Kind: KindIncompatibleDialect, Field: "jsonrpc", Detail: fmt.Sprintf("unsupported version %q", tag)}
	}
	return V2, nil
}
