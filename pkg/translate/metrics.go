package translate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Translation request metrics
	translationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingopipe_translation_requests_total",
			Help: "Total number of translation requests",
		},
		[]string{"provider", "status"},
	)

	translationRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingopipe_translation_request_duration_seconds",
			Help:    "Duration of translation requests in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"provider", "status"},
	)

	translationRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingopipe_translation_request_size_bytes",
			Help:    "Size of translation request text in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"provider"},
	)

	translationResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingopipe_translation_response_size_bytes",
			Help:    "Size of translation response text in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"provider"},
	)

	// Failure metrics
	translationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingopipe_translation_errors_total",
			Help: "Total number of classified translation failures by kind",
		},
		[]string{"provider", "kind"},
	)

	segmentMismatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingopipe_segment_count_mismatch_total",
			Help: "Total number of batch responses whose segment count differed from the request",
		},
		[]string{"provider"},
	)

	// Resolver metrics
	languageDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingopipe_language_detections_total",
			Help: "Total number of auto-detected source languages",
		},
		[]string{"language"},
	)

	sessionResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingopipe_session_resets_total",
			Help: "Total number of provider session resets",
		},
		[]string{"provider"},
	)
)

// RecordRequest records the outcome of one pipeline request for a
// provider. status is "success", "error" or "skipped".
func RecordRequest(provider, status string, duration time.Duration, requestSize, responseSize int) {
	translationRequestsTotal.WithLabelValues(provider, status).Inc()
	translationRequestDuration.WithLabelValues(provider, status).Observe(duration.Seconds())
	translationRequestSize.WithLabelValues(provider).Observe(float64(requestSize))
	if responseSize > 0 {
		translationResponseSize.WithLabelValues(provider).Observe(float64(responseSize))
	}
}

// RecordError records one classified failure.
func RecordError(provider string, kind ErrorKind) {
	translationErrorsTotal.WithLabelValues(provider, string(kind)).Inc()
}

// RecordSegmentMismatch records one soft batch-count mismatch.
func RecordSegmentMismatch(provider string) {
	segmentMismatchTotal.WithLabelValues(provider).Inc()
}

// RecordDetection records one auto-detection outcome.
func RecordDetection(language string) {
	languageDetectionsTotal.WithLabelValues(language).Inc()
}

// RecordSessionReset records one session reset.
func RecordSessionReset(provider string) {
	sessionResetsTotal.WithLabelValues(provider).Inc()
}
