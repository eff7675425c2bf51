package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectors_Lint(t *testing.T) {
	for _, c := range []prometheus.Collector{
		PredictionsTotal,
		RecommendationsTotal,
		RecommendationsReturned,
		RequestDuration,
		CacheRequests,
	} {
		problems, err := testutil.CollectAndLint(c)
		assert.NoError(t, err)
		assert.Empty(t, problems)
	}
}

func TestPredictionsTotal_CountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues(OutcomeNotFound))
	PredictionsTotal.WithLabelValues(OutcomeNotFound).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PredictionsTotal.WithLabelValues(OutcomeNotFound)))
}
