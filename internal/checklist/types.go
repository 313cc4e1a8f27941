package checklist

import "weekly-checklist/internal/model"

// Stats represents checklist progress for a week.
type Stats struct {
	Total     int     // Total tasks
	Completed int     // Tasks marked completed
	Pending   int     // Tasks not yet completed
	Progress  float64 // Completion percentage (0-100)
}

// --- UseCase Inputs ---

type ViewInput struct {
	WeekID string // empty means the current week
}

type ImportInput struct {
	WeekID string
	Body   []byte
}

type ExportInput struct {
	WeekID string
}

// --- UseCase Outputs ---

type ViewOutput struct {
	WeekID    string // the week that was requested (after defaulting)
	Checklist *model.WeeklyChecklist
	Found     bool // false when Checklist was synthesized empty
	Stats     Stats
}

type ImportOutput struct {
	WeekID      string
	Checklist   *model.WeeklyChecklist
	AssignedIDs int // tasks that arrived without an id
}

type ExportOutput struct {
	Checklist *model.WeeklyChecklist
}

type ListWeeksOutput struct {
	WeekIDs       []string
	CurrentWeekID string
}
