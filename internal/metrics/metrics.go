// Package metrics exposes submission and cart counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements ports.Metrics.
type Metrics struct {
	Submissions   *prometheus.CounterVec
	CartMutations *prometheus.CounterVec
	CartSize      prometheus.Histogram
	Checkouts     prometheus.Counter
	CheckoutTotal prometheus.Histogram
}

// New registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cxtrauma_submissions_total",
			Help: "Order request submissions by result",
		}, []string{"result"}),
		CartMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cxtrauma_cart_mutations_total",
			Help: "Cart changes by operation",
		}, []string{"op"}),
		CartSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cxtrauma_cart_size",
			Help:    "Number of exams in a cart after each change",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		}),
		Checkouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "cxtrauma_checkouts_total",
			Help: "Exam orders checked out",
		}),
		CheckoutTotal: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cxtrauma_checkout_total_pesos",
			Help:    "Order total of each checkout in CLP",
			Buckets: []float64{0, 10000, 25000, 50000, 100000, 200000, 400000},
		}),
	}
}

func (m *Metrics) ObserveSubmission(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.Submissions.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveCartMutation(op string, count int) {
	m.CartMutations.WithLabelValues(op).Inc()
	m.CartSize.Observe(float64(count))
}

func (m *Metrics) ObserveCheckout(total int64) {
	m.Checkouts.Inc()
	m.CheckoutTotal.Observe(float64(total))
}
