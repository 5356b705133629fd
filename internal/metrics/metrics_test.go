package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSubmission(true)
	m.ObserveSubmission(false)
	m.ObserveSubmission(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues("rejected")))
}

func TestObserveCartMutation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCartMutation("add", 1)
	m.ObserveCartMutation("add", 2)
	m.ObserveCartMutation("clear", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CartMutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CartMutations.WithLabelValues("clear")))
}

func TestObserveCheckout(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCheckout(37000)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Checkouts))
	count, err := testutil.GatherAndCount(reg, "cxtrauma_checkout_total_pesos")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
