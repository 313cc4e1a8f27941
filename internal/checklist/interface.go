package checklist

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// View resolves a week's checklist: cache, then disk, then an empty default.
	View(ctx context.Context, input ViewInput) (ViewOutput, error)
	// Import replaces a week's checklist with the JSON body, on disk and in the cache.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	// Export returns the stored checklist. ErrChecklistNotFound when nothing was imported.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
	// ListWeeks returns every week with a checklist on disk.
	ListWeeks(ctx context.Context) (ListWeeksOutput, error)
}
