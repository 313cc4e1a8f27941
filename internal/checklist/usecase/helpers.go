package usecase

import (
	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
)

func (uc *implUseCase) validateWeekID(weekID string) error {
	if weekID == "" {
		return checklist.ErrMissingWeek
	}
	if !checklist.IsSafeWeekID(weekID) {
		return checklist.ErrInvalidWeek
	}
	return nil
}

// fillMissing gives id-less tasks a generated id and copies the map key into empty day dates.
// It returns how many task ids were generated.
func (uc *implUseCase) fillMissing(cl *model.WeeklyChecklist) int {
	assigned := 0
	for key, day := range cl.Days {
		for i := range day.Tasks {
			if day.Tasks[i].ID == "" {
				day.Tasks[i].ID = uc.newID()
				assigned++
			}
		}
		if day.Date == "" {
			day.Date = key
			cl.Days[key] = day
		}
	}
	return assigned
}
