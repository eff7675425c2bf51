package autosense

import (
	"spectraSense/domain"
	"spectraSense/pkg/logger"
)

// FeatureSequence holds the features of one prediction run. Insert places a
// feature at the front, so traversal runs from the most recently inserted
// feature to the first one. Duplicate names are kept and all are summed.
type FeatureSequence struct {
	// stored in insertion order; the logical head is the last element
	features []domain.Feature
}

func NewFeatureSequence() *FeatureSequence {
	return &FeatureSequence{}
}

// Insert prepends a feature.
func (s *FeatureSequence) Insert(name string, coefficient, value float64) {
	s.features = append(s.features, domain.Feature{
		Name:        name,
		Coefficient: coefficient,
		Value:       value,
	})
}

func (s *FeatureSequence) Len() int {
	return len(s.features)
}

// ForEach visits features from head to tail and stops early when visit
// returns false.
func (s *FeatureSequence) ForEach(visit func(domain.Feature) bool) {
	for i := len(s.features) - 1; i >= 0; i-- {
		if !visit(s.features[i]) {
			return
		}
	}
}

// Accumulate returns the sum of coefficient*value over every feature.
func (s *FeatureSequence) Accumulate() float64 {
	sum := 0.0
	s.ForEach(func(f domain.Feature) bool {
		sum += f.Contribution()
		return true
	})
	return sum
}

// Traverse writes every feature to the debug log.
func (s *FeatureSequence) Traverse() {
	s.ForEach(func(f domain.Feature) bool {
		logger.Debug("feature",
			"feature", f.Name,
			"coefficient", f.Coefficient,
			"feature_value", f.Value,
		)
		return true
	})
}
