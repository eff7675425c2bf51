package autosense

import (
	"context"
	"fmt"
	"strings"

	"spectraSense/domain"
	"spectraSense/pkg/logger"
)

// PredictiveDataRepository fetches the coefficient rows of one predictive type.
type PredictiveDataRepository interface {
	FindByType(ctx context.Context, predictiveType string) ([]domain.PredictiveData, error)
}

type PredictorState int

const (
	StateUnloaded PredictorState = iota
	StateLoaded
	StatePredicted
)

func (s PredictorState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StatePredicted:
		return "predicted"
	default:
		return "unloaded"
	}
}

// Predictor scores one predictive type with a linear model. It lives for a
// single request: Load, then Predict and/or Explain in any order.
type Predictor struct {
	repo     PredictiveDataRepository
	typ      string
	state    PredictorState
	features *FeatureSequence
}

func NewPredictor(repo PredictiveDataRepository) *Predictor {
	return &Predictor{
		repo:  repo,
		state: StateUnloaded,
	}
}

func (p *Predictor) State() PredictorState {
	return p.state
}

func (p *Predictor) Type() string {
	return p.typ
}

// Load fetches every row of predictiveType into a fresh feature sequence.
// A second Load replaces the data of the first.
func (p *Predictor) Load(ctx context.Context, predictiveType string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	predictiveType = strings.TrimSpace(predictiveType)
	if predictiveType == "" {
		return domain.ErrInvalidType
	}

	rows, err := p.repo.FindByType(ctx, predictiveType)
	if err != nil {
		return fmt.Errorf("failed to fetch predictive data: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("type %q: %w", predictiveType, domain.ErrNoDataForType)
	}

	features := NewFeatureSequence()
	for _, row := range rows {
		features.Insert(row.FeatureName, row.Coefficient, row.Feature)
	}

	p.typ = predictiveType
	p.features = features
	p.state = StateLoaded

	return nil
}

// Predict returns the sum of coefficient*value over the loaded features.
func (p *Predictor) Predict() (float64, error) {
	if p.state == StateUnloaded {
		return 0, domain.ErrPredictorNotLoaded
	}

	prediction := p.features.Accumulate()
	p.state = StatePredicted

	return prediction, nil
}

// Explain names the feature with the largest contribution. Among equal
// maxima the earliest fetched row wins, because features are indexed in
// reverse fetch order and the index returns the last inserted maximum.
func (p *Predictor) Explain() (domain.Explanation, error) {
	if p.state == StateUnloaded {
		return domain.Explanation{}, domain.ErrPredictorNotLoaded
	}

	index := NewContributionIndex()
	p.features.ForEach(func(f domain.Feature) bool {
		index.Insert(f.Name, f.Contribution())
		return true
	})

	top, err := index.FindMax()
	if err != nil {
		return domain.Explanation{}, fmt.Errorf("failed to find most influential feature: %w", err)
	}

	logger.Info(fmt.Sprintf("The prediction is most influenced by %s with a contribution of %v.", top.FeatureName, top.Contribution),
		"type", p.typ,
		"feature", top.FeatureName,
		"contribution", top.Contribution,
	)

	return domain.Explanation{
		MostInfluentialFeature: top.FeatureName,
		Contribution:           top.Contribution,
	}, nil
}
