package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/datemath"
)

func newTestUseCase(t *testing.T) (*implUseCase, *mockRepo, *mockCache) {
	t.Helper()
	cal, err := datemath.NewCalendar("UTC")
	require.NoError(t, err)
	cal = cal.WithClock(func() time.Time { return time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC) })

	repo := newMockRepo()
	cache := newMockCache(repo)
	uc := New(repo, cache, cal, &mockLogger{})

	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return uc, repo, cache
}

func TestView(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to current week", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		out, err := uc.View(ctx, checklist.ViewInput{})
		require.NoError(t, err)
		assert.Equal(t, "2025-W2", out.WeekID)
		assert.Equal(t, "2025-W2", out.Checklist.WeekID)
		assert.False(t, out.Found)
	})

	t.Run("Never-saved week synthesizes empty checklist", func(t *testing.T) {
		uc, _, cache := newTestUseCase(t)
		out, err := uc.View(ctx, checklist.ViewInput{WeekID: "2099-W52"})
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Equal(t, "2099-W52", out.Checklist.WeekID)
		assert.Empty(t, out.Checklist.Days)
		assert.Empty(t, out.Checklist.Resources)

		_, cached := cache.peek("2099-W52")
		assert.False(t, cached, "synthesized default must not be cached")
	})

	t.Run("Stored week with stats", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		cl := model.NewEmptyChecklist("2025-W1")
		cl.Days["2025-01-01"] = model.DayChecklist{Date: "2025-01-01", Tasks: []model.TaskItem{
			{ID: "a", Completed: true}, {ID: "b"},
		}}
		repo.weeks["2025-W1"] = cl

		out, err := uc.View(ctx, checklist.ViewInput{WeekID: "2025-W1"})
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Same(t, cl, out.Checklist)
		assert.Equal(t, 2, out.Stats.Total)
		assert.Equal(t, 1, out.Stats.Completed)
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing week", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{Body: []byte(`{}`)})
		assert.ErrorIs(t, err, checklist.ErrMissingWeek)
	})

	t.Run("Unsafe week", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "../x", Body: []byte(`{}`)})
		assert.ErrorIs(t, err, checklist.ErrInvalidWeek)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W1", Body: []byte(`{"weekId": `)})
		assert.ErrorIs(t, err, checklist.ErrInvalidPayload)
		assert.Empty(t, repo.weeks)
	})

	t.Run("Empty body", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W1"})
		assert.ErrorIs(t, err, checklist.ErrInvalidPayload)
	})

	t.Run("Success persists then caches", func(t *testing.T) {
		uc, repo, cache := newTestUseCase(t)
		body := `{"weekId":"2025-W1","days":{"2025-01-06":{"date":"2025-01-06","tasks":[
			{"id":"t1","description":"Plan"},
			{"description":"No id"}
		]}}}`

		out, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W1", Body: []byte(body)})
		require.NoError(t, err)
		assert.Equal(t, 1, out.AssignedIDs)

		stored := repo.weeks["2025-W1"]
		require.NotNil(t, stored)
		assert.Equal(t, "gen-1", stored.Days["2025-01-06"].Tasks[1].ID)
		assert.Equal(t, model.DefaultPriority, stored.Days["2025-01-06"].Tasks[1].Priority)

		cached, ok := cache.peek("2025-W1")
		require.True(t, ok)
		assert.Same(t, stored, cached)
	})

	t.Run("Week parameter wins over body weekId", func(t *testing.T) {
		uc, repo, cache := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W3", Body: []byte(`{"weekId":"2025-W9"}`)})
		require.NoError(t, err)

		require.Contains(t, repo.weeks, "2025-W3")
		assert.NotContains(t, repo.weeks, "2025-W9")
		assert.Equal(t, "2025-W3", repo.weeks["2025-W3"].WeekID)
		_, ok := cache.peek("2025-W3")
		assert.True(t, ok)
	})

	t.Run("Empty day date takes map key", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W2", Body: []byte(`{"days":{"2025-01-07":{"tasks":[]}}}`)})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-07", repo.weeks["2025-W2"].Days["2025-01-07"].Date)
	})

	t.Run("Save failure leaves cache untouched", func(t *testing.T) {
		uc, repo, cache := newTestUseCase(t)
		prior := model.NewEmptyChecklist("2025-W1")
		cache.Put("2025-W1", prior)
		repo.saveErr = errors.New("disk full")

		_, err := uc.Import(ctx, checklist.ImportInput{WeekID: "2025-W1", Body: []byte(`{"weekId":"2025-W1"}`)})
		assert.ErrorIs(t, err, checklist.ErrSaveFailed)

		cached, _ := cache.peek("2025-W1")
		assert.Same(t, prior, cached)
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestUseCase(t)
	repo.weeks["2025-W1"] = model.NewEmptyChecklist("2025-W1")

	out, err := uc.Export(ctx, checklist.ExportInput{WeekID: "2025-W1"})
	require.NoError(t, err)
	assert.Equal(t, "2025-W1", out.Checklist.WeekID)

	_, err = uc.Export(ctx, checklist.ExportInput{WeekID: "2099-W1"})
	assert.ErrorIs(t, err, checklist.ErrChecklistNotFound)

	_, err = uc.Export(ctx, checklist.ExportInput{})
	assert.ErrorIs(t, err, checklist.ErrMissingWeek)
}

func TestListWeeks(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestUseCase(t)
	repo.weeks["2025-W1"] = model.NewEmptyChecklist("2025-W1")

	out, err := uc.ListWeeks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-W1"}, out.WeekIDs)
	assert.Equal(t, "2025-W2", out.CurrentWeekID)

	repo.listErr = errors.New("boom")
	_, err = uc.ListWeeks(ctx)
	assert.Error(t, err)
}
