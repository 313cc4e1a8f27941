package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
)

// Import parses the body and replaces the week's checklist.
// The file is written first; the cache only sees checklists that reached disk.
func (uc *implUseCase) Import(ctx context.Context, input checklist.ImportInput) (checklist.ImportOutput, error) {
	if err := uc.validateWeekID(input.WeekID); err != nil {
		return checklist.ImportOutput{}, err
	}

	if !bytes.HasPrefix(bytes.TrimSpace(input.Body), []byte("{")) {
		return checklist.ImportOutput{}, fmt.Errorf("%w: body must be a JSON object", checklist.ErrInvalidPayload)
	}

	var cl model.WeeklyChecklist
	if err := json.Unmarshal(input.Body, &cl); err != nil {
		return checklist.ImportOutput{}, fmt.Errorf("%w: %v", checklist.ErrInvalidPayload, err)
	}

	if cl.WeekID != "" && cl.WeekID != input.WeekID {
		uc.l.Warnf(ctx, "checklist/usecase.Import: body weekId %q differs from week %q, storing under %q",
			cl.WeekID, input.WeekID, input.WeekID)
	}
	cl.WeekID = input.WeekID
	cl.Normalize(input.WeekID)
	assigned := uc.fillMissing(&cl)

	if err := uc.repo.Save(ctx, &cl); err != nil {
		uc.l.Errorf(ctx, "checklist/usecase.Import repo.Save: %v", err)
		return checklist.ImportOutput{}, fmt.Errorf("%w: %v", checklist.ErrSaveFailed, err)
	}
	uc.cache.Put(input.WeekID, &cl)

	uc.l.Infof(ctx, "checklist/usecase.Import: imported and saved checklist %s (%d day(s), %d resource(s))",
		input.WeekID, len(cl.Days), len(cl.Resources))

	return checklist.ImportOutput{
		WeekID:      input.WeekID,
		Checklist:   &cl,
		AssignedIDs: assigned,
	}, nil
}
