package utils

import "errors"

var (
	ErrEmptyDataset      = errors.New("weather dataset is empty")
	ErrInvalidWeights    = errors.New("invalid feature weights")
	ErrClusterNotReady   = errors.New("clustering model not ready")
	ErrLocationNotFound  = errors.New("location not found")
	ErrNoMatch           = errors.New("no locations match the request")
	ErrInvalidLimit      = errors.New("invalid limit parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrIntentUnavailable = errors.New("intent service unavailable")
)
