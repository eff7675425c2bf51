package autoentertain

import (
	"context"
	"fmt"
	"strings"

	"spectraSense/domain"
	"spectraSense/pkg/logger"
	"spectraSense/pkg/metrics"
)

// MediaRepository contract interface. All lookups are substring matches.
type MediaRepository interface {
	FindByGenre(ctx context.Context, genre string) ([]domain.Media, error)
	FindByTitle(ctx context.Context, title string) ([]domain.Media, error)
	FindByGenreExcluding(ctx context.Context, genre string, excludeID uint64) ([]domain.Media, error)
}

type AutoEntertainService struct {
	mediaRepo MediaRepository
	ranker    SimilarityRanker
	threshold float64
}

func NewAutoEntertainService(mediaRepo MediaRepository) *AutoEntertainService {
	return &AutoEntertainService{
		mediaRepo: mediaRepo,
		ranker:    NewSimilarityRanker(),
		threshold: DefaultThreshold,
	}
}

// GetMedia lists the media whose genre contains genre.
func (s *AutoEntertainService) GetMedia(ctx context.Context, genre string) ([]domain.Media, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get media")
		return nil, fmt.Errorf("context error: %w", err)
	}

	media, err := s.mediaRepo.FindByGenre(ctx, genre)
	if err != nil {
		logger.Error("Failed to find media by genre", "genre", genre, "error", err)
		return nil, err
	}

	return media, nil
}

// Recommend resolves title to the first matching media item and returns the
// items of the same genre that are similar enough to it.
func (s *AutoEntertainService) Recommend(ctx context.Context, title string) (domain.SimilarityResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recommending media")
		return domain.SimilarityResult{}, fmt.Errorf("context error: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return domain.SimilarityResult{}, domain.ErrInvalidTitle
	}

	matches, err := s.mediaRepo.FindByTitle(ctx, title)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("Failed to find media by title", "title", title, "error", err)
		return domain.SimilarityResult{}, err
	}
	if len(matches) == 0 {
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		logger.Warn("media not found", "title", title)
		return domain.SimilarityResult{}, fmt.Errorf("title %q: %w", title, domain.ErrNotFound)
	}

	selected := matches[0]

	candidates, err := s.mediaRepo.FindByGenreExcluding(ctx, selected.Genre, selected.ID)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("Failed to find recommendation candidates", "genre", selected.Genre, "error", err)
		return domain.SimilarityResult{}, err
	}

	recommendations := s.ranker.Recommend(selected, candidates, s.threshold)

	metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.RecommendationsReturned.Observe(float64(len(recommendations)))
	logger.Info("recommendations served",
		"title", title,
		"selected_id", selected.ID,
		"candidates", len(candidates),
		"recommendations", len(recommendations),
	)

	return domain.SimilarityResult{
		SelectedMedia:   selected,
		Recommendations: recommendations,
	}, nil
}
