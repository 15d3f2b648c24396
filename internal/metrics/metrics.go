package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/alion/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	Reconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconciliations,
			Help: HelpTextReconciliations,
		},
		[]string{LabelOutcome},
	)

	VersionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVersionConflicts,
			Help: HelpTextVersionConflicts,
		},
	)

	ResourcesProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesProduced,
			Help: HelpTextResourcesProduced,
		},
		[]string{LabelResource},
	)

	VillagesFounded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVillagesFounded,
			Help: HelpTextVillagesFounded,
		},
	)

	TribesSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTribesSelected,
			Help: HelpTextTribesSelected,
		},
		[]string{LabelTribe},
	)
)

// RecordProduced adds persisted production to the per-resource counters
func RecordProduced(produced domain.Resources) {
	for _, r := range domain.AllResources {
		if n := produced.Get(r); n > 0 {
			ResourcesProduced.WithLabelValues(string(r)).Add(float64(n))
		}
	}
}
