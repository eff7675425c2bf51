package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// Predictions served by AutoSense, by outcome
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spectrasense_predictions_total",
		Help: "Total number of prediction requests by outcome",
	}, []string{"outcome"})

	// Recommendation requests served by AutoEntertain, by outcome
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spectrasense_recommendations_total",
		Help: "Total number of recommendation requests by outcome",
	}, []string{"outcome"})

	RecommendationsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spectrasense_recommendations_returned",
		Help:    "Number of items returned per recommendation request",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spectrasense_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	CacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spectrasense_cache_requests_total",
		Help: "Row cache lookups by cache and result",
	}, []string{"cache", "result"})
)

func Init() {
	prometheus.MustRegister(
		PredictionsTotal,
		RecommendationsTotal,
		RecommendationsReturned,
		RequestDuration,
		CacheRequests,
	)
}
