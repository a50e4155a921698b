package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation results recorded by RegisterMetrics.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// RegisterMetrics groups Prometheus collectors for checkout registers.
type RegisterMetrics struct {
	Operations *prometheus.CounterVec
	Amount     *prometheus.CounterVec
}

// NewRegisterMetrics registers and returns register metrics collectors.
func NewRegisterMetrics(namespace string, reg prometheus.Registerer) *RegisterMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &RegisterMetrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "register_operations_total",
			Help:      "Count of register scan and remove calls by outcome.",
		}, []string{"operation", "result"}),
		Amount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "register_amount_minor_total",
			Help:      "Absolute money moved by accepted register calls, in minor units.",
		}, []string{"operation"}),
	}
	mustRegister(reg, &m.Operations)
	mustRegister(reg, &m.Amount)
	return m
}

// Observe records one register call. Rejected calls move no money.
func (m *RegisterMetrics) Observe(operation string, accepted bool, amount int64) {
	if m == nil {
		return
	}
	result := ResultRejected
	if accepted {
		result = ResultOK
	}
	m.Operations.WithLabelValues(operation, result).Inc()
	if !accepted {
		return
	}
	if amount < 0 {
		amount = -amount
	}
	m.Amount.WithLabelValues(operation).Add(float64(amount))
}

func mustRegister(reg prometheus.Registerer, counter **prometheus.CounterVec) {
	if err := reg.Register(*counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				*counter = existing
			}
			return
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
}
