package trap

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-trap/contract"
)

const (
	// Domain identifies this package as the source of an Error.
	Domain = "scg.trap"

	// CodeTrappedException is the sentinel code carried by every trapped exception.
	CodeTrappedException = "trap.exception"
)

// Dedicated metadata keys.
const (
	MetadataKeyName     = "exception_name"
	MetadataKeyReason   = "exception_reason"
	MetadataKeyUserInfo = "exception_user_info"
	MetadataKeyScope    = "scope"
)

// ErrTrapped matches every Error under errors.Is.
var ErrTrapped = errors.New("trapped exception")

// Error is the value produced when a panic is trapped.
//
// Fields:
//   - Name:     short identifying token of the exception (e.g. "RuntimeError")
//   - Reason:   human-readable description
//   - UserInfo: ancillary data supplied by the raiser, if any
//   - Value:    the raw value passed to panic
//   - Stack:    goroutine stack at the panic site, when captured
//   - Scope:    label of the Guard that trapped it
type Error struct {
	name     string
	reason   string
	userInfo map[string]any
	value    any
	stack    []byte
	scope    string
	cause    error
}

// compile-time guarantee that *Error implements contract.TrappedError
var _ contract.TrappedError = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// User info is never rendered; read it through the getters.
	return fmt.Sprintf("%s [%s]: %s", CodeTrappedException, e.name, e.reason)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Is reports whether target is ErrTrapped.
func (e *Error) Is(target error) bool { return e != nil && target == ErrTrapped }

// ------ contract.TrappedError getters

func (e *Error) Domain() string { return Domain }
func (e *Error) Code() string   { return CodeTrappedException }

func (e *Error) ExceptionName() string {
	if e == nil {
		return ""
	}

	return e.name
}

func (e *Error) Reason() string {
	if e == nil {
		return ""
	}

	return e.reason
}

func (e *Error) UserInfo() map[string]any {
	if e == nil {
		return nil
	}

	return cloneMap(e.userInfo)
}

// Metadata returns the error's metadata mapping. The name and reason are
// always present; user info and scope only when set.
func (e *Error) Metadata() map[string]any {
	if e == nil {
		return nil
	}

	md := map[string]any{
		MetadataKeyName:   e.name,
		MetadataKeyReason: e.reason,
	}
	if ui := cloneMap(e.userInfo); ui != nil {
		md[MetadataKeyUserInfo] = ui
	}

	if e.scope != "" {
		md[MetadataKeyScope] = e.scope
	}

	return md
}

// Value returns the raw value the callback panicked with.
func (e *Error) Value() any {
	if e == nil {
		return nil
	}

	return e.value
}

// Stack returns a copy of the captured stack trace, or nil.
func (e *Error) Stack() []byte {
	if e == nil || len(e.stack) == 0 {
		return nil
	}

	out := make([]byte, len(e.stack))
	copy(out, e.stack)

	return out
}

func (e *Error) Scope() string {
	if e == nil {
		return ""
	}

	return e.scope
}

// ------ core constructor

// New creates a new Error with the provided identity.
// UserInfo is defensively cloned (pass nil for none).
func New(name, reason string, userInfo map[string]any, opts ...Option) *Error {
	e := &Error{
		name:     name,
		reason:   reason,
		userInfo: cloneMap(userInfo),
	}
	for _, o := range opts {
		o(e)
	}

	return e
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Deep-clone nested maps with string keys to avoid leaking internal references.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
