package checklist

import (
	"regexp"

	"weekly-checklist/internal/model"
)

// Week ids double as file names, so only a conservative character set is accepted.
var safeWeekIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// IsSafeWeekID reports whether weekID can be used as a storage key.
func IsSafeWeekID(weekID string) bool {
	return safeWeekIDPattern.MatchString(weekID)
}

// GetStats calculates checklist statistics
func GetStats(cl *model.WeeklyChecklist) Stats {
	if cl == nil {
		return Stats{}
	}

	total, completed := cl.TaskCount()
	if total == 0 {
		return Stats{}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// IsFullyCompleted checks if every task is completed
func IsFullyCompleted(cl *model.WeeklyChecklist) bool {
	s := GetStats(cl)
	if s.Total == 0 {
		return false // No tasks = nothing to complete
	}
	return s.Pending == 0
}
