package checklist

import "errors"

var (
	ErrMissingWeek       = errors.New("missing 'week' parameter")
	ErrInvalidWeek       = errors.New("invalid 'week' parameter")
	ErrInvalidPayload    = errors.New("invalid JSON")
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrSaveFailed        = errors.New("failed to save checklist")
)
