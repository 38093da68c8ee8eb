package trap

// Option configures an Error during construction via New().
type Option func(*Error)

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithValue records the raw panic value.
func WithValue(v any) Option { return func(e *Error) { e.value = v } }

// WithStack records a stack trace. The slice is copied.
func WithStack(stack []byte) Option {
	return func(e *Error) {
		if len(stack) == 0 {
			e.stack = nil
			return
		}

		e.stack = append([]byte(nil), stack...)
	}
}

// WithScope labels the error with the scope that trapped it.
func WithScope(scope string) Option { return func(e *Error) { e.scope = scope } }
