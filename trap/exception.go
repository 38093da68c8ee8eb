package trap

import (
	"errors"
	"fmt"
	"runtime"
)

// Names assigned to panic values that do not carry their own.
const (
	NameRuntimeError = "RuntimeError"
	NameError        = "Error"
	NamePanic        = "Panic"
)

// Exception is a named panic payload with ancillary data.
// Raise panics with one; Run turns it back into an *Error.
type Exception struct {
	Name     string
	Reason   string
	UserInfo map[string]any
}

func (x *Exception) Error() string {
	if x == nil {
		return "<nil>"
	}

	return x.Name + ": " + x.Reason
}

// Raise panics with an *Exception built from the arguments.
// UserInfo is cloned, so later changes by the caller are not observed.
func Raise(name, reason string, userInfo map[string]any) {
	panic(&Exception{Name: name, Reason: reason, UserInfo: cloneMap(userInfo)})
}

// Raisef is Raise with a formatted reason and no user info.
func Raisef(name, format string, args ...any) {
	panic(&Exception{Name: name, Reason: fmt.Sprintf(format, args...)})
}

// named is implemented by panic values that report their own exception name.
type named interface {
	ExceptionName() string
}

// convert maps a recovered panic value onto an Error.
func convert(r any, opts ...Option) *Error {
	opts = append([]Option{WithValue(r)}, opts...)

	switch v := r.(type) {
	case *Exception:
		if v == nil {
			return New(NamePanic, "nil *Exception", nil, opts...)
		}

		return New(v.Name, v.Reason, v.UserInfo, opts...)
	case Exception:
		return New(v.Name, v.Reason, v.UserInfo, opts...)
	case *Error:
		if v == nil {
			return New(NamePanic, "nil *Error", nil, opts...)
		}
		// A trapped error re-raised by the callback keeps its identity.
		return New(v.name, v.reason, v.userInfo, append(opts, WithCause(v))...)
	}

	err, isErr := r.(error)
	if isErr {
		opts = append(opts, WithCause(err))
	}

	if n, ok := r.(named); ok {
		if name, ok := nameOf(n); ok {
			return New(name, describe(r), nil, opts...)
		}
	}

	if isErr && isRuntimeError(err) {
		return New(NameRuntimeError, describe(r), nil, opts...)
	}

	if isErr {
		return New(NameError, describe(r), nil, opts...)
	}

	return New(NamePanic, describe(r), nil, opts...)
}

// describe renders r. fmt recovers panics raised by Error and String methods.
func describe(r any) string { return fmt.Sprint(r) }

// isRuntimeError walks err's chain for a runtime.Error. The walk calls
// user Unwrap and As methods; a panic there reports false.
func isRuntimeError(err error) (found bool) {
	defer func() {
		if recover() != nil {
			found = false
		}
	}()

	var rtErr runtime.Error

	return errors.As(err, &rtErr)
}

// nameOf calls ExceptionName, reporting false if it panics.
func nameOf(n named) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()

	return n.ExceptionName(), true
}
