package domain

import "errors"

var (
	// ErrNoDataForType is returned when the store has no predictive rows for a type.
	ErrNoDataForType = errors.New("invalid type provided or no data available for this type")

	// ErrNotFound is returned when a referenced media item does not exist.
	ErrNotFound = errors.New("movie not found")

	// ErrEmptyStructure is returned by a max lookup on an index with no nodes.
	ErrEmptyStructure = errors.New("contribution index is empty")

	ErrPredictorNotLoaded = errors.New("predictor has no data loaded")
	ErrInvalidType        = errors.New("predictive type is required")
	ErrInvalidTitle       = errors.New("media title is required")
)
