// Package contract exposes the minimal trapped-error interface used by other packages.
//
// Implementations must ensure UserInfo and Metadata return defensive copies and
// support errors.Unwrap for proper interoperability with standard error helpers.
package contract

// TrappedError is the minimal, stable surface of an error produced by
// converting a recovered panic into a value.
//
// Implementations must:
//   - Report a fixed Domain and Code for every value they produce.
//   - Ensure UserInfo() and Metadata() return defensive copies (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only getters and Unwrap; a trapped
// error is never mutated once returned.
type TrappedError interface {
	error
	Domain() string
	Code() string
	ExceptionName() string
	Reason() string
	// UserInfo returns a defensive copy; nil when the exception carried none.
	UserInfo() map[string]any
	// Metadata returns a defensive copy holding at least the name and reason.
	Metadata() map[string]any
	Unwrap() error
}

// MetadataCarrier is satisfied by any error exposing a metadata mapping.
// Accessors use it to read identity from errors they did not produce.
type MetadataCarrier interface {
	Metadata() map[string]any
}
