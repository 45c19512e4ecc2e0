package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the assessment service.
type Metrics struct {
	AssessmentsTotal prometheus.Counter
	AssessmentErrors prometheus.Counter
	ReportsRendered  *prometheus.CounterVec // labels: lang
	UsersRegistered  prometheus.Counter

	// Rainfall resolution metrics.
	RainfallLookups        *prometheus.CounterVec // labels: source={live,fallback}, reason
	RainfallLookupDuration prometheus.Histogram
	GeocodeCache           *prometheus.CounterVec // labels: result={hit,miss}

	// Event publishing metrics.
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentErrors,
		m.ReportsRendered,
		m.UsersRegistered,
		m.RainfallLookups,
		m.RainfallLookupDuration,
		m.GeocodeCache,
		m.EventsPublished,
		m.EventPublishErrors,
	)
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		AssessmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "assessments_total",
			Help:      "Total feasibility assessments computed.",
		}),
		AssessmentErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "assessment_errors_total",
			Help:      "Total assessment submissions that failed.",
		}),
		ReportsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "reports_rendered_total",
			Help:      "Total report documents rendered, by language.",
		}, []string{"lang"}),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "users_registered_total",
			Help:      "Total users created through registration or assessment submission.",
		}),
		RainfallLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "rainfall_lookups_total",
			Help:      "Rainfall resolutions by source and fallback reason.",
		}, []string{"source", "reason"}),
		RainfallLookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rwh",
			Name:      "rainfall_lookup_duration_seconds",
			Help:      "Duration of the full geocode + archive resolution.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "events_published_total",
			Help:      "Assessment events published to the sink topic.",
		}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rwh",
			Name:      "event_publish_errors_total",
			Help:      "Assessment event publish failures.",
		}),
	}
}
