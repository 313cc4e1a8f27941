package usecase

import (
	"context"

	"weekly-checklist/internal/checklist"
)

// Export returns the stored checklist for a week. Unlike View it never synthesizes one.
func (uc *implUseCase) Export(ctx context.Context, input checklist.ExportInput) (checklist.ExportOutput, error) {
	if err := uc.validateWeekID(input.WeekID); err != nil {
		return checklist.ExportOutput{}, err
	}

	cl, found := uc.cache.Get(ctx, input.WeekID)
	if !found {
		return checklist.ExportOutput{}, checklist.ErrChecklistNotFound
	}
	return checklist.ExportOutput{Checklist: cl}, nil
}

// ListWeeks returns every stored week plus the current week id.
func (uc *implUseCase) ListWeeks(ctx context.Context) (checklist.ListWeeksOutput, error) {
	ids, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "checklist/usecase.ListWeeks repo.List: %v", err)
		return checklist.ListWeeksOutput{}, err
	}

	return checklist.ListWeeksOutput{
		WeekIDs:       ids,
		CurrentWeekID: uc.calendar.CurrentWeekID(),
	}, nil
}
