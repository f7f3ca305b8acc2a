package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTranslation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveTranslation("page", "")
	m.ObserveTranslation("page", "")
	m.ObserveTranslation("track", "consent_not_granted")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Translations.WithLabelValues("page", "translated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Translations.WithLabelValues("track", "consent_not_granted")))
}

func TestObserveDelivery(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveDelivery(200)
	m.ObserveDelivery(204)
	m.ObserveDelivery(400)
	m.ObserveDelivery(0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Deliveries.WithLabelValues("2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Deliveries.WithLabelValues("4xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Deliveries.WithLabelValues("error")))
}
