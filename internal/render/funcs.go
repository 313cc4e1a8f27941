package render

import (
	"html/template"

	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/datemath"
)

// priorityOther is the badge class for priorities without a dedicated style.
const priorityOther = "OTHER"

func funcMap() template.FuncMap {
	return template.FuncMap{
		"priorityClass": priorityClass,
		"formatWeekID":  datemath.FormatWeekID,
		"formatDate":    datemath.FormatLongDate,
	}
}

// priorityClass maps a free-form priority onto a known CSS class.
func priorityClass(priority string) string {
	switch priority {
	case model.PriorityCritical, model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		return priority
	default:
		return priorityOther
	}
}
