package apperrors

import "errors"

var (
	ErrUnknownDataSource = errors.New("unknown data source")
	ErrProviderDisabled  = errors.New("provider is not configured")
	ErrUpstreamStatus    = errors.New("upstream returned an unexpected status")
	ErrNoSnapshot        = errors.New("record store has no snapshot loaded")
)
