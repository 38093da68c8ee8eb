package trap

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// Guard is a configurable trap. The zero value, and a nil *Guard, behave
// exactly like Run. A Guard holds no per-call state and may be shared
// between goroutines.
type Guard struct {
	scope   string
	stack   bool
	logger  *zap.Logger
	metrics *Metrics
}

// GuardOption configures a Guard during construction via NewGuard().
type GuardOption func(*Guard)

// WithGuardScope labels every error the guard produces.
func WithGuardScope(scope string) GuardOption { return func(g *Guard) { g.scope = scope } }

// WithStackTrace captures the goroutine stack at the panic site.
func WithStackTrace() GuardOption { return func(g *Guard) { g.stack = true } }

// WithLogger logs every trapped exception at error level.
func WithLogger(l *zap.Logger) GuardOption { return func(g *Guard) { g.logger = l } }

// WithMetrics counts every trapped exception.
func WithMetrics(m *Metrics) GuardOption { return func(g *Guard) { g.metrics = m } }

// NewGuard builds a Guard from opts.
func NewGuard(opts ...GuardOption) *Guard {
	g := &Guard{}
	for _, o := range opts {
		o(g)
	}

	return g
}

// Run has the semantics of the package-level Run, followed by the guard's
// observers when fn panicked. Observers never change the outcome.
func (g *Guard) Run(fn func()) (ok bool, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			err = g.trapped(r)
		}
	}()

	fn()

	return true, nil
}

// Do is Run with the outcome folded into a single error.
func (g *Guard) Do(fn func()) error {
	if _, err := g.Run(fn); err != nil {
		return err
	}

	return nil
}

// trapped runs inside the deferred recover, so debug.Stack still shows the
// panicking frames.
func (g *Guard) trapped(r any) *Error {
	if g == nil {
		return convert(r)
	}

	var opts []Option
	if g.scope != "" {
		opts = append(opts, WithScope(g.scope))
	}

	if g.stack {
		opts = append(opts, WithStack(debug.Stack()))
	}

	err := convert(r, opts...)
	g.observe(err)

	return err
}

// observe reports err to the logger and metrics. A panicking observer is
// skipped so it cannot replace the trapped outcome.
func (g *Guard) observe(err *Error) {
	ignorePanic(func() { g.log(err) })
	ignorePanic(func() { g.metrics.Observe(err) })
}

func ignorePanic(fn func()) {
	defer func() { _ = recover() }()

	fn()
}

func (g *Guard) log(err *Error) {
	if g.logger == nil {
		return
	}

	fields := []zap.Field{
		zap.String("scope", err.scope),
		zap.String("exception_name", err.name),
		zap.String("exception_reason", err.reason),
	}
	if len(err.stack) > 0 {
		fields = append(fields, zap.ByteString("stack", err.stack))
	}

	g.logger.Error("exception trapped", fields...)
}
