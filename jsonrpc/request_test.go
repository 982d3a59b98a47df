package jsonrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func methodCallCases() []struct {
	name string
	call *MethodCall
	wire string
} {
	return []struct {
		name string
		call *MethodCall
		wire string
	}{
		{
			"1.0 with params",
			NewMethodCallV1("foo", MustParams([]any{1, true}), NumberID(1)),
			`{"method":"foo","params":[1,true],"id":1}`,
		},
		{
			"1.0 with empty params",
			NewMethodCallV1("foo", MustParams([]any{}), NumberID(1)),
			`{"method":"foo","params":[],"id":1}`,
		},
		{
			"1.0 with string id",
			NewMethodCallV1("foo", MustParams([]any{}), StringID("abc")),
			`{"method":"foo","params":[],"id":"abc"}`,
		},
		{
			"2.0 with array params",
			NewMethodCallV2("foo", MustParams([]any{1, true}), NumberID(1)),
			`{"jsonrpc":"2.0","method":"foo","params":[1,true],"id":1}`,
		},
		{
			"2.0 with empty params",
			NewMethodCallV2("foo", MustParams([]any{}), NumberID(1)),
			`{"jsonrpc":"2.0","method":"foo","params":[],"id":1}`,
		},
		{
			"2.0 with object params",
			NewMethodCallV2("foo", MustParams(map[string]string{"key": "value"}), NumberID(1)),
			`{"jsonrpc":"2.0","method":"foo","params":{"key":"value"},"id":1}`,
		},
		{
			"2.0 without params",
			NewMethodCallV2("foo", Params{}, NumberID(1)),
			`{"jsonrpc":"2.0","method":"foo","id":1}`,
		},
		{
			"2.0 with string id",
			NewMethodCallV2("foo", Params{}, StringID("abc")),
			`{"jsonrpc":"2.0","method":"foo","id":"abc"}`,
		},
	}
}

func notificationCases() []struct {
	name string
	note *Notification
	wire string
} {
	return []struct {
		name string
		note *Notification
		wire string
	}{
		{
			"1.0 with params",
			NewNotificationV1("foo", MustParams([]any{1, true})),
			`{"method":"foo","params":[1,true],"id":null}`,
		},
		{
			"1.0 with empty params",
			NewNotificationV1("foo", MustParams([]any{})),
			`{"method":"foo","params":[],"id":null}`,
		},
		{
			"2.0 with array params",
			NewNotificationV2("foo", MustParams([]any{1, true})),
			`{"jsonrpc":"2.0","method":"foo","params":[1,true]}`,
		},
		{
			"2.0 with empty params",
			NewNotificationV2("foo", MustParams([]any{})),
			`{"jsonrpc":"2.0","method":"foo","params":[]}`,
		},
		{
			"2.0 with object params",
			NewNotificationV2("foo", MustParams(map[string]string{"key": "value"})),
			`{"jsonrpc":"2.0","method":"foo","params":{"key":"value"}}`,
		},
		{
			"2.0 without params",
			NewNotificationV2("foo", Params{}),
			`{"jsonrpc":"2.0","method":"foo"}`,
		},
	}
}

func TestMethodCallRoundTrip(t *testing.T) {
	for _, tt := range methodCallCases() {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeCall(tt.call)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(enc))

			got, err := DecodeCall([]byte(tt.wire))
			require.NoError(t, err)
			assert.Equal(t, tt.call, got)
		})
	}
}

func TestNotificationRoundTrip(t *testing.T) {
	for _, tt := range notificationCases() {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeCall(tt.note)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(enc))

			got, err := DecodeCall([]byte(tt.wire))
			require.NoError(t, err)
			assert.Equal(t, tt.note, got)
		})
	}
}

func TestDecodeCallRejections(t *testing.T) {
	tests := []struct {
		name string
		wire string
		kind DecodeKind
	}{
		{"1.0 unknown field", `{"method":"foo","params":[1,true],"id":1,"unknown":[]}`, KindUnknownField},
		{"1.0 fractional id", `{"method":"foo","params":[1,true],"id":1.2}`, KindInvalidIDShape},
		{"1.0 missing id", `{"method":"foo","params":[1,true]}`, KindIncompatibleDialect},
		{"1.0 missing params", `{"method":"foo","id":1}`, KindIncompatibleDialect},
		{"1.0 object params", `{"method":"foo","params":{"key":"value"},"id":1}`, KindIncompatibleDialect},
		{"1.0 notification with object params", `{"method":"foo","params":{"key":"value"},"id":null}`, KindIncompatibleDialect},
		{"missing method", `{"params":[],"id":1}`, KindMissingField},
		{"bare unknown field", `{"unknown":[]}`, KindUnknownField},
		{"duplicate method", `{"method":"foo","method":"bar","params":[],"id":1}`, KindDuplicateField},
		{"duplicate params", `{"method":"foo","params":[],"params":[],"id":1}`, KindDuplicateField},
		{"2.0 null id", `{"jsonrpc":"2.0","method":"foo","params":[1,true],"id":null}`, KindIncompatibleDialect},
		{"2.0 unknown field", `{"jsonrpc":"2.0","method":"foo","id":1,"unknown":[]}`, KindUnknownField},
		{"2.0 missing method", `{"jsonrpc":"2.0","id":1}`, KindMissingField},
		{"2.0 empty method", `{"jsonrpc":"2.0","method":"","id":1}`, KindIncompatibleDialect},
		{"2.0 scalar params", `{"jsonrpc":"2.0","method":"foo","params":"nope","id":1}`, KindInvalidParamsShape},
		{"unsupported version", `{"jsonrpc":"1.0","method":"foo","params":[],"id":1}`, KindIncompatibleDialect},
		{"non-string version", `{"jsonrpc":2,"method":"foo","params":[],"id":1}`, KindIncompatibleDialect},
		{"non-string method", `{"method":1,"params":[],"id":1}`, KindIncompatibleDialect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCall([]byte(tt.wire))
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.kind, de.Kind)
		})
	}
}

func TestDecodeRequestSingle(t *testing.T) {
	wire := `{"method":"foo","params":[1,true],"id":1}`

	req, err := DecodeRequest([]byte(wire))
	require.NoError(t, err)
	assert.False(t, req.Batch)
	require.Len(t, req.Calls, 1)

	call, ok := req.Calls[0].(*MethodCall)
	require.True(t, ok)
	assert.Equal(t, V1, call.Dialect)
	assert.Equal(t, "foo", call.Method)
	assert.Equal(t, NumberID(1), call.ID)

	enc, err := EncodeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, wire, string(enc))
}

func TestDecodeRequestBatchPreservesOrder(t *testing.T) {
	wire := `[{"method":"foo","params":[],"id":1},{"method":"bar","params":[],"id":2}]`

	req, err := DecodeRequest([]byte(wire))
	require.NoError(t, err)
	assert.True(t, req.Batch)
	require.Len(t, req.Calls, 2)
	assert.Equal(t, "foo", req.Calls[0].MethodName())
	assert.Equal(t, "bar", req.Calls[1].MethodName())

	enc, err := EncodeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, wire, string(enc))
}

func TestDecodeRequestEmptyBatch(t *testing.T) {
	req, err := DecodeRequest([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, req.Batch)
	assert.Empty(t, req.Calls)

	enc, err := EncodeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(enc))
}

func TestDecodeRequestRejectsScalarDocuments(t *testing.T) {
	for _, wire := range []string{`5`, `"x"`, `true`, `null`, ``} {
		t.Run(wire, func(t *testing.T) {
			_, err := DecodeRequest([]byte(wire))
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, KindInvalidRequestShape, de.Kind)
		})
	}
}

func TestDecodeRequestPassesThroughSyntaxErrors(t *testing.T) {
	for _, wire := range []string{`{"method":`, `[{"method":"foo"}`} {
		_, err := DecodeRequest([]byte(wire))
		require.Error(t, err)
		var de *DecodeError
		assert.NotErrorAs(t, err, &de)

		// Syntax errors are not recoverable in lenient mode either.
		_, err = DecodeRequestLenient([]byte(wire))
		require.Error(t, err)
	}
}

func TestDecodeRequestRejectsTrailingData(t *testing.T) {
	valid := `{"method":"foo","params":[],"id":1}`
	for _, wire := range []string{valid + ` trailing junk`, valid + valid} {
		_, err := DecodeRequest([]byte(wire))
		require.Error(t, err)

		// Not a per-envelope validation failure, so lenient mode fails too.
		_, err = DecodeRequestLenient([]byte(wire))
		require.Error(t, err)
	}

	// Surrounding whitespace is not trailing data.
	req, err := DecodeRequest([]byte(valid + "\n"))
	require.NoError(t, err)
	require.Len(t, req.Calls, 1)
}

func TestRoundTripKeepsHTMLCharacters(t *testing.T) {
	for _, wire := range []string{
		`{"method":"a<b","params":["<&>"],"id":"a<b"}`,
		`{"jsonrpc":"2.0","method":"a<b","params":{"k":"<&>"},"id":"x&y"}`,
	} {
		req, err := DecodeRequest([]byte(wire))
		require.NoError(t, err)

		enc, err := EncodeRequest(req)
		require.NoError(t, err)
		assert.Equal(t, wire, string(enc))
	}
}

func TestDecodeRequestLenientSalvagesID(t *testing.T) {
	tests := []struct {
		name string
		wire string
		id   ID
	}{
		{"id recoverable", `{"method":"foo","params":[1,true],"id":7,"unknown":[]}`, NumberID(7)},
		{"string id recoverable", `{"result":true,"id":"abc"}`, StringID("abc")},
		{"no id", `{"unknown":[]}`, NullID()},
		{"malformed id", `{"unknown":[],"id":1.5}`, NullID()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Strict decoding must reject the envelope outright.
			_, err := DecodeRequest([]byte(tt.wire))
			require.Error(t, err)

			req, err := DecodeRequestLenient([]byte(tt.wire))
			require.NoError(t, err)
			require.Len(t, req.Calls, 1)

			invalid, ok := req.Calls[0].(*InvalidCall)
			require.True(t, ok)
			id, hasID := invalid.CallID()
			assert.True(t, hasID)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestDecodeRequestLenientKeepsValidCalls(t *testing.T) {
	wire := `[{"method":"foo","params":[],"id":1},{"unknown":[]},{"jsonrpc":"2.0","method":"bar"}]`

	req, err := DecodeRequestLenient([]byte(wire))
	require.NoError(t, err)
	require.Len(t, req.Calls, 3)

	assert.IsType(t, &MethodCall{}, req.Calls[0])
	assert.IsType(t, &InvalidCall{}, req.Calls[1])
	assert.IsType(t, &Notification{}, req.Calls[2])
}

func TestInvalidCallCannotBeEncoded(t *testing.T) {
	req, err := DecodeRequestLenient([]byte(`{"unknown":[]}`))
	require.NoError(t, err)

	_, err = EncodeRequest(req)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
}

func TestV1ConstructorsPanicOnObjectParams(t *testing.T) {
	objParams := MustParams(map[string]int{"a": 1})

	assert.Panics(t, func() { NewMethodCallV1("foo", objParams, NumberID(1)) })
	assert.Panics(t, func() { NewNotificationV1("foo", objParams) })
	assert.Panics(t, func() { NewMethodCallV1("foo", Params{}, NumberID(1)) })
}

func TestEncodeV1ObjectParamsFails(t *testing.T) {
	call := &MethodCall{
		Dialect: V1,
		Method:  "foo",
		Params:  MustParams(map[string]int{"a": 1}),
		ID:      NumberID(1),
	}
	_, err := EncodeCall(call)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)

	note := &Notification{Dialect: V1, Method: "foo", Params: Params{}}
	_, err = EncodeCall(note)
	require.ErrorAs(t, err, &ee)
}

func TestCallAccessors(t *testing.T) {
	call := NewMethodCallV2("sum", MustParams([]int{1, 2}), NumberID(9))
	id, ok := call.CallID()
	assert.True(t, ok)
	assert.Equal(t, NumberID(9), id)
	assert.Equal(t, "sum", call.MethodName())
	assert.True(t, call.CallParams().IsArray())

	note := NewNotificationV2("ping", Params{})
	_, ok = note.CallID()
	assert.False(t, ok)
}
