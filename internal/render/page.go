package render

import (
	"sort"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/datemath"
)

type checklistPage struct {
	WeekID    string
	Days      []dayView
	Resources []model.ResourceLink
	Stats     checklist.Stats
	Done      bool
	PrevWeek  string
	NextWeek  string
}

type dayView struct {
	Heading     string
	PlannedTime string
	Tasks       []taskView
}

type taskView struct {
	CheckboxID    string
	Description   string
	Completed     bool
	EstimatedTime string
	Priority      string
}

// HomePage is the data for the landing page.
type HomePage struct {
	CurrentWeekID string
	Weeks         []string
}

func newChecklistPage(cl *model.WeeklyChecklist, weekID string) checklistPage {
	page := checklistPage{
		WeekID:    cl.WeekID,
		Resources: cl.Resources,
		Stats:     checklist.GetStats(cl),
		Done:      checklist.IsFullyCompleted(cl),
	}
	if prev, err := datemath.ShiftWeekID(weekID, -1); err == nil {
		page.PrevWeek = prev
	}
	if next, err := datemath.ShiftWeekID(weekID, 1); err == nil {
		page.NextWeek = next
	}

	keys := make([]string, 0, len(cl.Days))
	for key := range cl.Days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		day := cl.Days[key]
		date := day.Date
		if date == "" {
			date = key
		}

		dv := dayView{
			Heading:     datemath.FormatLongDate(date),
			PlannedTime: day.PlannedTime,
			Tasks:       make([]taskView, 0, len(day.Tasks)),
		}
		for _, task := range day.Tasks {
			dv.Tasks = append(dv.Tasks, taskView{
				CheckboxID:    cl.WeekID + "-" + date + "-" + task.ID,
				Description:   task.Description,
				Completed:     task.Completed,
				EstimatedTime: task.EstimatedTime,
				Priority:      task.Priority,
			})
		}
		page.Days = append(page.Days, dv)
	}
	return page
}
