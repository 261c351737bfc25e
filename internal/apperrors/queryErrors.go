package apperrors

import "errors"

var (
	ErrInvalidDays = errors.New("days must be an integer between 1 and 365")
)
