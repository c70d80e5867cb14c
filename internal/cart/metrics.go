package cart

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opAdd    = "add"
	opRemove = "remove"

	resultApplied = "applied"
	resultNoop    = "noop"
)

type Metrics struct {
	Ops   *prometheus.CounterVec
	Items prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_operations_total",
				Help: "Cart mutations by operation and outcome",
			},
			[]string{"op", "result"},
		),
		Items: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cart_items",
				Help: "Entries currently in the cart",
			},
		),
	}

	reg.MustRegister(m.Ops, m.Items)
	return m
}

func (m *Metrics) observe(op string, applied bool, size int) {
	if m == nil {
		return
	}

	result := resultNoop
	if applied {
		result = resultApplied
	}
	m.Ops.WithLabelValues(op, result).Inc()
	m.Items.Set(float64(size))
}
