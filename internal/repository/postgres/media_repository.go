package postgres

import (
	"context"
	"fmt"
	"spectraSense/domain"
	"strings"

	"gorm.io/gorm"
)

type MediaRepository struct {
	DB *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{
		DB: db,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds a case-insensitive substring pattern.
func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *MediaRepository) FindByGenre(ctx context.Context, genre string) ([]domain.Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var media []domain.Media
	err := r.DB.WithContext(ctx).
		Where("genre ILIKE ?", contains(genre)).
		Order("id").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find media by genre: %w", err)
	}

	return media, nil
}

func (r *MediaRepository) FindByTitle(ctx context.Context, title string) ([]domain.Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var media []domain.Media
	err := r.DB.WithContext(ctx).
		Where("title ILIKE ?", contains(title)).
		Order("id").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find media by title: %w", err)
	}

	return media, nil
}

func (r *MediaRepository) FindByGenreExcluding(ctx context.Context, genre string, excludeID uint64) ([]domain.Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var media []domain.Media
	err := r.DB.WithContext(ctx).
		Where("genre ILIKE ? AND id <> ?", contains(genre), excludeID).
		Order("id").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendation candidates: %w", err)
	}

	return media, nil
}
