package postgres

import (
	"context"
	"fmt"
	"spectraSense/domain"

	"gorm.io/gorm"
)

type PredictiveDataRepository struct {
	DB *gorm.DB
}

func NewPredictiveDataRepository(db *gorm.DB) *PredictiveDataRepository {
	return &PredictiveDataRepository{
		DB: db,
	}
}

// FindByType returns the coefficient rows of a predictive type in fetch
// order. No rows is not an error here.
func (r *PredictiveDataRepository) FindByType(ctx context.Context, predictiveType string) ([]domain.PredictiveData, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.PredictiveData
	err := r.DB.WithContext(ctx).
		Select("feature_name", "coefficient", "feature").
		Where("type = ?", predictiveType).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query predictive_data: %w", err)
	}

	return rows, nil
}
