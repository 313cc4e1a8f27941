package repository

import "errors"

var (
	ErrFailedToSave = errors.New("failed to save checklist")
	ErrFailedToList = errors.New("failed to list checklists")
	ErrUnsafeWeekID = errors.New("week id is not a safe file name")
)
