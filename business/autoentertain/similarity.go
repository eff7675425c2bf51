package autoentertain

import (
	"math"
	"strings"

	"spectraSense/domain"
)

const (
	// DefaultThreshold is the minimum similarity for a recommendation.
	DefaultThreshold = 0.5

	genreWeight  = 0.5
	ratingWeight = 0.5

	genreSeparator = ", "
)

// SimilarityRanker scores candidates against a reference item by genre
// overlap and rating closeness.
type SimilarityRanker struct{}

func NewSimilarityRanker() SimilarityRanker {
	return SimilarityRanker{}
}

// Score returns 0.5*genre + 0.5*rating in [0, 1]. Genre resemblance is 1 when
// the two genre lists share any token and 0 otherwise. Rating resemblance is
// 1/(1+|Δrating|).
func (SimilarityRanker) Score(candidate, reference domain.Media) float64 {
	return genreWeight*genreResemblance(candidate.Genre, reference.Genre) +
		ratingWeight*ratingResemblance(candidate.Rating, reference.Rating)
}

// Recommend keeps the candidates scoring at least threshold, in their input
// order. The reference itself is never returned.
func (r SimilarityRanker) Recommend(reference domain.Media, candidates []domain.Media, threshold float64) []domain.Media {
	out := make([]domain.Media, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}
		if r.Score(candidate, reference) >= threshold {
			out = append(out, candidate)
		}
	}
	return out
}

// splitGenres is case-sensitive; "Action, Drama" yields {Action, Drama}.
func splitGenres(genre string) map[string]struct{} {
	parts := strings.Split(genre, genreSeparator)
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[strings.TrimSpace(p)] = struct{}{}
	}
	return set
}

func genreResemblance(candidate, reference string) float64 {
	candidateGenres := splitGenres(candidate)
	for g := range splitGenres(reference) {
		if _, ok := candidateGenres[g]; ok {
			return 1
		}
	}
	return 0
}

func ratingResemblance(candidate, reference float64) float64 {
	return 1 / (1 + math.Abs(candidate-reference))
}
