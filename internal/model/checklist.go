package model

import "encoding/json"

// Default field values applied when decoding absent or null JSON fields.
const (
	DefaultPriority = "MEDIUM"
	DefaultCategory = "General"
)

// Priorities with a dedicated badge style.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// WeeklyChecklist is one week's plan, keyed by WeekID ("2025-W1").
// Days are keyed by "YYYY-MM-DD"; Resources keep display order.
type WeeklyChecklist struct {
	WeekID    string                  `json:"weekId"`
	Days      map[string]DayChecklist `json:"days"`
	Resources []ResourceLink          `json:"resources"`
}

// DayChecklist holds the ordered tasks for a single date.
type DayChecklist struct {
	Date        string     `json:"date"`
	Tasks       []TaskItem `json:"tasks"`
	PlannedTime string     `json:"plannedTime"`
}

// TaskItem is a single checkbox entry. Priority is an open string; see DefaultPriority.
type TaskItem struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	EstimatedTime string `json:"estimatedTime"`
	Priority      string `json:"priority"`
}

// ResourceLink is a titled link shown under the week's days.
type ResourceLink struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// NewEmptyChecklist returns the checklist served for a week nobody has imported yet.
func NewEmptyChecklist(weekID string) *WeeklyChecklist {
	return &WeeklyChecklist{
		WeekID:    weekID,
		Days:      map[string]DayChecklist{},
		Resources: []ResourceLink{},
	}
}

// Normalize fills an empty WeekID and replaces nil collections with empty ones.
func (w *WeeklyChecklist) Normalize(weekID string) {
	if w.WeekID == "" {
		w.WeekID = weekID
	}
	if w.Days == nil {
		w.Days = map[string]DayChecklist{}
	}
	if w.Resources == nil {
		w.Resources = []ResourceLink{}
	}
	for key, day := range w.Days {
		if day.Tasks == nil {
			day.Tasks = []TaskItem{}
			w.Days[key] = day
		}
	}
}

func (w *WeeklyChecklist) UnmarshalJSON(data []byte) error {
	type alias WeeklyChecklist
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*w = WeeklyChecklist(a)
	w.Normalize("")
	return nil
}

func (d *DayChecklist) UnmarshalJSON(data []byte) error {
	type alias DayChecklist
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Tasks == nil {
		a.Tasks = []TaskItem{}
	}
	*d = DayChecklist(a)
	return nil
}

func (t *TaskItem) UnmarshalJSON(data []byte) error {
	type alias TaskItem
	var raw struct {
		alias
		Priority *string `json:"priority"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = TaskItem(raw.alias)
	t.Priority = DefaultPriority
	if raw.Priority != nil {
		t.Priority = *raw.Priority
	}
	return nil
}

func (r *ResourceLink) UnmarshalJSON(data []byte) error {
	type alias ResourceLink
	var raw struct {
		alias
		Category *string `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ResourceLink(raw.alias)
	r.Category = DefaultCategory
	if raw.Category != nil {
		r.Category = *raw.Category
	}
	return nil
}

// TaskCount returns the total and completed task counts across all days.
func (w *WeeklyChecklist) TaskCount() (total, completed int) {
	for _, day := range w.Days {
		for _, task := range day.Tasks {
			total++
			if task.Completed {
				completed++
			}
		}
	}
	return total, completed
}
