package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prospector"

var (
	ProspectSetsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prospect_sets_created_total",
			Help:      "Total number of prospect sets created",
		},
	)

	LeadsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_generated_total",
			Help:      "Total number of leads stored, by lead source",
		},
		[]string{"source"},
	)

	ProspectSetLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prospect_set_lookups_total",
			Help:      "Prospect set lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RegisterStoredSets exposes the current number of stored prospect sets as a gauge.
// Registering twice is a no-op.
func RegisterStoredSets(reg prometheus.Registerer, count func() int) {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prospect_sets_stored",
			Help:      "Number of prospect sets currently held in memory",
		},
		func() float64 { return float64(count()) },
	)
	if err := reg.Register(gauge); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			panic(err)
		}
	}
}
