package jsonrpc

import "encoding/json"

// callFields is the closed schema of a request envelope.
var callFields = []string{"jsonrpc", "method", "params", "id"}

// Call is a single request-side envelope: a method call, a notification, or
// (decode only) an invalid envelope carrying a salvaged id.
type Call interface {
	// MethodName returns the method to invoke, empty for invalid calls.
	MethodName() string
	// CallParams returns the call arguments.
	CallParams() Params
	// CallID returns the correlation id and whether the call carries one.
	// Notifications carry none; no response may be produced for them.
	CallID() (ID, bool)

	isCall()
}

// MethodCall is a request that expects a response.
type MethodCall struct {
	Dialect Dialect
	Method  string
	Params  Params
	ID      ID
}

// NewMethodCallV1 builds a JSON-RPC 1.0 method call. 1.0 params must be an
// array; passing anything else is a caller bug and panics.
func NewMethodCallV1(method string, params Params, id ID) *MethodCall {
	if !params.IsArray() {
		panic("jsonrpc: JSON-RPC 1.0 params must be an array")
	}
	return &MethodCall{Dialect: V1, Method: method, Params: params, ID: id}
}

// NewMethodCallV2 builds a JSON-RPC 2.0 method call. Params may be absent.
func NewMethodCallV2(method string, params Params, id ID) *MethodCall {
	return &MethodCall{Dialect: V2, Method: method, Params: params, ID: id}
}

func (c *MethodCall) MethodName() string { return c.Method }
func (c *MethodCall) CallParams() Params { return c.Params }
func (c *MethodCall) CallID() (ID, bool) { return c.ID, true }
func (c *MethodCall) isCall()            {}

// MarshalJSON implements json.Marshaler, emitting the exact field set the
// call's dialect mandates.
func (c *MethodCall) MarshalJSON() ([]byte, error) {
	switch c.Dialect {
	case V2:
		if c.Params.IsAbsent() {
			return marshalNoEscape(struct {
				Jsonrpc string `json:"jsonrpc"`
				Method  string `json:"method"`
				ID      ID     `json:"id"`
			}{versionTag, c.Method, c.ID})
		}
		return marshalNoEscape(struct {
			Jsonrpc string `json:"jsonrpc"`
			Method  string `json:"method"`
			Params  Params `json:"params"`
			ID      ID     `json:"id"`
		}{versionTag, c.Method, c.Params, c.ID})
	case V1:
		if !c.Params.IsArray() {
			return nil, &EncodeError{Detail: "JSON-RPC 1.0 params must be an array"}
		}
		return marshalNoEscape(struct {
			Method string `json:"method"`
			Params Params `json:"params"`
			ID     ID     `json:"id"`
		}{c.Method, c.Params, c.ID})
	default:
		return nil, &EncodeError{Detail: "method call has no dialect"}
	}
}

// Notification is a request for which no response object may be returned,
// not even inside a batch.
type Notification struct {
	Dialect Dialect
	Method  string
	Params  Params
}

// NewNotificationV1 builds a JSON-RPC 1.0 notification. 1.0 params must be
// an array; passing anything else is a caller bug and panics.
func NewNotificationV1(method string, params Params) *Notification {
	if !params.IsArray() {
		panic("jsonrpc: JSON-RPC 1.0 params must be an array")
	}
	return &Notification{Dialect: V1, Method: method, Params: params}
}

// NewNotificationV2 builds a JSON-RPC 2.0 notification. Params may be absent.
func NewNotificationV2(method string, params Params) *Notification {
	return &Notification{Dialect: V2, Method: method, Params: params}
}

func (n *Notification) MethodName() string { return n.Method }
func (n *Notification) CallParams() Params { return n.Params }
func (n *Notification) CallID() (ID, bool) { return ID{}, false }
func (n *Notification) isCall()            {}

// MarshalJSON implements json.Marshaler. A 1.0 notification is written with
// an explicit "id":null, never without the field.
func (n *Notification) MarshalJSON() ([]byte, error) {
	switch n.Dialect {
	case V2:
		if n.Params.IsAbsent() {
			return marshalNoEscape(struct {
				Jsonrpc string `json:"jsonrpc"`
				Method  string `json:"method"`
			}{versionTag, n.Method})
		}
		return marshalNoEscape(struct {
			Jsonrpc string `json:"jsonrpc"`
			Method  string `json:"method"`
			Params  Params `json:"params"`
		}{versionTag, n.Method, n.Params})
	case V1:
		if !n.Params.IsArray() {
			return nil, &EncodeError{Detail: "JSON-RPC 1.0 params must be an array"}
		}
		return marshalNoEscape(struct {
			Method string `json:"method"`
			Params Params `json:"params"`
			ID     ID     `json:"id"`
		}{n.Method, n.Params, NullID()})
	default:
		return nil, &EncodeError{Detail: "notification has no dialect"}
	}
}

// InvalidCall captures an envelope that parsed as JSON but matched neither
// dialect's request rules, keeping whatever id could be salvaged so an
// InvalidRequest response can still be correlated. It is produced only by
// lenient decoding; there is no public constructor and it cannot be encoded.
type InvalidCall struct {
	id ID
}

func (c *InvalidCall) MethodName() string { return "" }
func (c *InvalidCall) CallParams() Params { return Params{} }
func (c *InvalidCall) CallID() (ID, bool) { return c.id, true }
func (c *InvalidCall) isCall()            {}

// DecodeCall decodes a single request envelope, strictly. It never returns
// an *InvalidCall.
func DecodeCall(data []byte) (Call, error) {
	if firstByte(data) != '{' {
		return nil, &DecodeError{Kind: KindInvalidRequestShape, Detail: "call must be an object"}
	}
	fields, err := scanObject(data, callFields)
	if err != nil {
		return nil, err
	}
	return callFromFields(fields)
}

// EncodeCall encodes a single request envelope in its dialect's field order.
func EncodeCall(c Call) ([]byte, error) {
	switch call := c.(type) {
	case *MethodCall:
		return call.MarshalJSON()
	case *Notification:
		return call.MarshalJSON()
	case *InvalidCall:
		return nil, &EncodeError{Detail: "an invalid call cannot be encoded"}
	default:
		return nil, &EncodeError{Detail: "unknown call type"}
	}
}

// callFromFields runs the dialect inference and validation over the set of
// fields present. The case analysis is deliberately explicit: the rules are
// sensitive to field presence, not just value shape.
func callFromFields(fields map[string]json.RawMessage) (Call, error) {
	dialect, err := dialectOf(fields)
	if err != nil {
		return nil, err
	}

	methodRaw, ok := fields["method"]
	if !ok {
		return nil, &DecodeError{Kind: KindMissingField, Field: "method"}
	}
	var method string
	if err := json.Unmarshal(methodRaw, &method); err != nil {
		return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "method", Detail: "method must be a string"}
	}
	if method == "" {
		return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "method", Detail: "method must not be empty"}
	}

	var params Params
	if raw, ok := fields["params"]; ok {
		if params, err = decodeParams(raw); err != nil {
			return nil, err
		}
	}

	idRaw, idPresent := fields["id"]
	var id ID
	if idPresent {
		if id, err = decodeID(idRaw); err != nil {
			return nil, err
		}
	}

	switch dialect {
	case V2:
		// 2.0: an id makes a method call, its absence a notification.
		// An explicit null id matches neither rule.
		if !idPresent {
			return &Notification{Dialect: V2, Method: method, Params: params}, nil
		}
		if id.IsNull() {
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "id", Detail: "a 2.0 request id must not be null"}
		}
		return &MethodCall{Dialect: V2, Method: method, Params: params, ID: id}, nil
	default:
		// 1.0: params must be present and an array; the id field must be
		// present, with null marking a notification.
		if params.IsAbsent() {
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "params", Detail: "a 1.0 request requires params"}
		}
		if !params.IsArray() {
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "params", Detail: "JSON-RPC 1.0 params must be an array"}
		}
		if !idPresent {
			return nil, &DecodeError{Kind: KindIncompatibleDialect, Field: "id", Detail: "a 1.0 request requires an id, null for notifications"}
		}
		if id.IsNull() {
			return &Notification{Dialect: V1, Method: method, Params: params}, nil
		}
		return &MethodCall{Dialect: V1, Method: method, Params: params, ID: id}, nil
	}
}

// salvageCall extracts whatever id an unintelligible envelope carried, for
// correlating the InvalidRequest reply. A missing or malformed id degrades
// to null.
func salvageCall(data []byte) Call {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	id := NullID()
	if err := json.Unmarshal(data, &probe); err == nil && probe.ID != nil {
		if got, err := decodeID(probe.ID); err == nil {
			id = got
		}
	}
	return &InvalidCall{id: id}
}
