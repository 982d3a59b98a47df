// Package jsonrpc encodes and decodes JSON-RPC request and response
// envelopes for both the 1.0 and 2.0 wire dialects.
//
// The dialect of an envelope is inferred from field presence alone: a
// "jsonrpc":"2.0" tag marks 2.0, its absence marks 1.0. Decoding is strict.
// Every top-level field must be recognized, appear at most once, and the
// resulting field combination must match exactly one dialect's rules.
// Encoding is the mirror image, including the 1.0 quirks: no jsonrpc tag,
// "id":null on notifications, and an explicit null result/error companion
// field on responses.
//
// The package is a pure transformation between bytes and envelope values.
// It holds no state and is safe for concurrent use.
package jsonrpc
