package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the adapter's Prometheus collectors.
type Metrics struct {
	Translations *prometheus.CounterVec
	Deliveries   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Translations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "conversions_translations_total",
			Help: "Translation attempts by event kind and outcome",
		}, []string{"kind", "outcome"}),
		Deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "conversions_deliveries_total",
			Help: "Requests sent to the provider by response status class",
		}, []string{"status_class"}),
	}
}

// ObserveTranslation counts one translation. An empty reason means the
// event was translated.
func (m *Metrics) ObserveTranslation(kind, reason string) {
	outcome := reason
	if outcome == "" {
		outcome = "translated"
	}
	m.Translations.WithLabelValues(kind, outcome).Inc()
}

// ObserveDelivery counts one send. statusCode 0 means a transport error.
func (m *Metrics) ObserveDelivery(statusCode int) {
	class := "error"
	if statusCode > 0 {
		class = strconv.Itoa(statusCode/100) + "xx"
	}
	m.Deliveries.WithLabelValues(class).Inc()
}
