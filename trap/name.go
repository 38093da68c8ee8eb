package trap

import (
	"errors"

	"github.com/next-trace/scg-trap/contract"
)

// ExceptionName returns the exception name recorded in err's metadata.
//
// Behavior:
//   - nil input => "", false
//   - the first error in the chain exposing Metadata() is consulted, so
//     wrapped *Error values and foreign carriers both resolve
//   - missing key, non-string value or nil metadata => "", false
//
// It never panics and never modifies err.
func ExceptionName(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	carrier, ok := carrierOf(err)
	if !ok {
		return "", false
	}

	md, ok := metadataOf(carrier)
	if !ok {
		return "", false
	}

	name, ok := md[MetadataKeyName].(string)

	return name, ok
}

// As returns the *Error in err's chain, if any. Like ExceptionName it treats
// a panicking chain walk as absence.
func As(err error) (e *Error, ok bool) {
	defer func() {
		if recover() != nil {
			e, ok = nil, false
		}
	}()

	if errors.As(err, &e) && e != nil {
		return e, true
	}

	return nil, false
}

// carrierOf finds the first metadata carrier in err's chain. A panicking
// Unwrap or As method is treated as absence.
func carrierOf(err error) (carrier contract.MetadataCarrier, ok bool) {
	defer func() {
		if recover() != nil {
			carrier, ok = nil, false
		}
	}()

	ok = errors.As(err, &carrier)

	return carrier, ok
}

// metadataOf reads a foreign carrier's metadata, treating a panic as absence.
func metadataOf(c contract.MetadataCarrier) (md map[string]any, ok bool) {
	defer func() {
		if recover() != nil {
			md, ok = nil, false
		}
	}()

	return c.Metadata(), true
}
