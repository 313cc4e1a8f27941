package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
)

func TestGetStats(t *testing.T) {
	cl := model.NewEmptyChecklist("2025-W2")
	cl.Days["2025-01-06"] = model.DayChecklist{Date: "2025-01-06", Tasks: []model.TaskItem{
		{ID: "a", Completed: true},
		{ID: "b"},
	}}
	cl.Days["2025-01-07"] = model.DayChecklist{Date: "2025-01-07", Tasks: []model.TaskItem{
		{ID: "c", Completed: true},
		{ID: "d", Completed: true},
	}}

	got := checklist.GetStats(cl)
	assert.Equal(t, checklist.Stats{Total: 4, Completed: 3, Pending: 1, Progress: 75}, got)
	assert.False(t, checklist.IsFullyCompleted(cl))

	cl.Days["2025-01-06"].Tasks[1].Completed = true
	assert.True(t, checklist.IsFullyCompleted(cl))
}

func TestGetStatsEmpty(t *testing.T) {
	assert.Equal(t, checklist.Stats{}, checklist.GetStats(nil))
	assert.Equal(t, checklist.Stats{}, checklist.GetStats(model.NewEmptyChecklist("2025-W1")))
	assert.False(t, checklist.IsFullyCompleted(model.NewEmptyChecklist("2025-W1")))
}

func TestIsSafeWeekID(t *testing.T) {
	for _, ok := range []string{"2025-W1", "2099-W52", "sprint_12", "A"} {
		assert.True(t, checklist.IsSafeWeekID(ok), ok)
	}
	for _, bad := range []string{"", "../etc/passwd", "2025/W1", ".hidden", "2025-W1.json", "a b", "-W1"} {
		assert.False(t, checklist.IsSafeWeekID(bad), bad)
	}
}
