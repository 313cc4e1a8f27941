package usecase

import (
	"context"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
)

// View returns the checklist for the requested week, defaulting to the current week.
// Weeks with nothing stored get an empty checklist that is not cached.
func (uc *implUseCase) View(ctx context.Context, input checklist.ViewInput) (checklist.ViewOutput, error) {
	weekID := input.WeekID
	if weekID == "" {
		weekID = uc.calendar.CurrentWeekID()
	}

	cl, found := uc.cache.Get(ctx, weekID)
	if !found {
		uc.l.Debugf(ctx, "checklist/usecase.View: no checklist for %s, using empty default", weekID)
		cl = model.NewEmptyChecklist(weekID)
	}

	return checklist.ViewOutput{
		WeekID:    weekID,
		Checklist: cl,
		Found:     found,
		Stats:     checklist.GetStats(cl),
	}, nil
}
