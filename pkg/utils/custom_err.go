package utils

import "errors"

var (
	ErrPOINotFound        = errors.New("poi not found")
	ErrInvalidTimeWindow  = errors.New("invalid time window")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("ai request limit reached")
	ErrDatabaseError      = errors.New("database error")
	ErrEmbeddingFailed    = errors.New("embedding provider error")
	ErrDatasetUnavailable = errors.New("poi dataset unavailable")
)
