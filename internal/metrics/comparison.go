package metrics

import "github.com/prometheus/client_golang/prometheus"

// Comparison Prometheus metrics.
var (
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradematch",
			Name:      "comparisons_total",
			Help:      "Total number of document comparisons",
		},
		[]string{"status"},
	)

	MatchPercentage = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tradematch",
			Name:      "comparison_match_percentage",
			Help:      "Distribution of comparison match percentages",
			Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	FieldsExtractedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradematch",
			Name:      "fields_extracted_total",
			Help:      "Total fields extracted per document source",
		},
		[]string{"source"},
	)

	ScoringRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradematch",
			Name:      "scoring_requests_total",
			Help:      "Total scoring provider requests",
		},
		[]string{"provider", "status"},
	)

	ScoringRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tradematch",
			Name:      "scoring_request_duration_seconds",
			Help:      "Scoring provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)
)

// RegisterComparisonMetrics registers the comparison metric vectors.
// Called explicitly from the composition root (no init()).
func RegisterComparisonMetrics() {
	prometheus.MustRegister(
		ComparisonsTotal,
		MatchPercentage,
		FieldsExtractedTotal,
		ScoringRequestsTotal,
		ScoringRequestDuration,
	)
}
