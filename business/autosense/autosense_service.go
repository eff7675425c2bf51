package autosense

import (
	"context"
	"errors"
	"fmt"

	"spectraSense/domain"
	"spectraSense/pkg/logger"
	"spectraSense/pkg/metrics"
)

type AutoSenseService struct {
	repo PredictiveDataRepository
}

func NewAutoSenseService(repo PredictiveDataRepository) *AutoSenseService {
	return &AutoSenseService{
		repo: repo,
	}
}

// PredictAndExplain loads the rows of predictiveType, then predicts and
// explains on a predictor owned by this call.
func (s *AutoSenseService) PredictAndExplain(ctx context.Context, predictiveType string) (domain.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when predicting", "error", err)
		return domain.PredictionResult{}, fmt.Errorf("context error: %w", err)
	}

	predictor := NewPredictor(s.repo)
	if err := predictor.Load(ctx, predictiveType); err != nil {
		outcome := metrics.OutcomeError
		switch {
		case errors.Is(err, domain.ErrNoDataForType):
			outcome = metrics.OutcomeNotFound
		case errors.Is(err, domain.ErrInvalidType):
			outcome = metrics.OutcomeInvalid
		}
		metrics.PredictionsTotal.WithLabelValues(outcome).Inc()

		logger.Error("Failed to load predictive data", "type", predictiveType, "error", err)
		return domain.PredictionResult{}, err
	}

	if logger.DebugEnabled() {
		predictor.features.Traverse()
	}

	prediction, err := predictor.Predict()
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.PredictionResult{}, err
	}

	explanation, err := predictor.Explain()
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("Failed to explain prediction", "type", predictiveType, "error", err)
		return domain.PredictionResult{}, err
	}

	metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	logger.Info("prediction served",
		"type", predictor.Type(),
		"state", predictor.State().String(),
		"features", predictor.features.Len(),
		"prediction", prediction,
	)

	return domain.PredictionResult{
		Prediction:  prediction,
		Explanation: explanation,
	}, nil
}
