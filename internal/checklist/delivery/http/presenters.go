package http

import (
	"fmt"

	"weekly-checklist/internal/checklist"
)

// --- Request DTOs ---

type viewReq struct {
	Week string `form:"week"`
}

func (r viewReq) toInput() checklist.ViewInput {
	return checklist.ViewInput{WeekID: r.Week}
}

// ---

type importReq struct {
	Week string `form:"week"`
	Body []byte `form:"-"`
}

func (r importReq) toInput() checklist.ImportInput {
	return checklist.ImportInput{WeekID: r.Week, Body: r.Body}
}

// ---

type exportReq struct {
	Week string `form:"week"`
}

func (r exportReq) toInput() checklist.ExportInput {
	return checklist.ExportInput{WeekID: r.Week}
}

// --- Responses ---

func (h *handler) newImportResp(out checklist.ImportOutput) string {
	return fmt.Sprintf("Imported and saved checklist for week: %s", out.WeekID)
}
