package apperrors

import "errors"

var (
	ErrRecordIDRequired      = errors.New("record id is required")
	ErrInvalidTimeSpent      = errors.New("time_spent must be a non-negative number")
	ErrInvalidDate           = errors.New("date must use YYYY-MM-DD format")
	ErrInvalidResolution     = errors.New("resolution_time must be a non-negative number")
	ErrMissingField          = errors.New("required field is missing")
	ErrUnsupportedMockFormat = errors.New("unsupported mock data format")
)
