package trap

import (
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// otherName replaces exception names outside a Metrics allow-list.
const otherName = "other"

// Metrics counts trapped exceptions by scope and exception name.
type Metrics struct {
	trapped *prometheus.CounterVec
	known   map[string]struct{}
}

// MetricsOption configures Metrics during construction via NewMetrics().
type MetricsOption func(*Metrics)

// WithKnownNames limits the exception_name label to names. Any other name is
// counted as "other".
func WithKnownNames(names ...string) MetricsOption {
	return func(m *Metrics) {
		if m.known == nil {
			m.known = make(map[string]struct{}, len(names))
		}

		for _, n := range names {
			m.known[n] = struct{}{}
		}
	}
}

// NewMetrics registers the trap counter with reg. If an identical counter is
// already registered, it is reused.
//
// Exception names come from panic payloads, so without WithKnownNames the
// exception_name label is as unbounded as the set of names callers raise.
// Panics with runtime or plain errors only ever produce the fixed names
// RuntimeError, Error and Panic.
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) (*Metrics, error) {
	trapped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scg",
			Subsystem: "trap",
			Name:      "exceptions_total",
			Help:      "Total number of panics trapped and converted into errors",
		},
		[]string{"scope", "exception_name"},
	)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	if err := reg.Register(trapped); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}

		trapped = existing
	}

	m := &Metrics{trapped: trapped}
	for _, o := range opts {
		o(m)
	}

	return m, nil
}

// Observe counts err. Nil receivers and nil errors are ignored, and label
// values that prometheus still rejects drop the observation.
func (m *Metrics) Observe(err *Error) {
	if m == nil || err == nil {
		return
	}

	c, lerr := m.trapped.GetMetricWithLabelValues(labelValue(err.scope), m.nameLabel(err.name))
	if lerr != nil {
		return
	}

	c.Inc()
}

func (m *Metrics) nameLabel(name string) string {
	if m.known == nil {
		return labelValue(name)
	}

	if _, ok := m.known[name]; ok {
		return labelValue(name)
	}

	return otherName
}

// labelValue makes v acceptable as a prometheus label value.
func labelValue(v string) string { return strings.ToValidUTF8(v, "\uFFFD") }
