package repository

import (
	"context"

	"weekly-checklist/internal/model"
)

// Repository is the durable store for weekly checklists.
type Repository interface {
	// Save overwrites the stored checklist for cl.WeekID.
	Save(ctx context.Context, cl *model.WeeklyChecklist) error
	// Load returns nil, nil when the week is absent or its file cannot be parsed.
	Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error)
	Exists(ctx context.Context, weekID string) bool
	// List returns the ids of all stored weeks, sorted.
	List(ctx context.Context) ([]string, error)
}

// Cache is the in-memory tier in front of a Repository.
type Cache interface {
	// Get returns the cached checklist, reading through to the Repository on a miss.
	Get(ctx context.Context, weekID string) (*model.WeeklyChecklist, bool)
	// Put replaces the cached entry. It never writes to the Repository.
	Put(weekID string, cl *model.WeeklyChecklist)
	Invalidate(weekID string)
}
