package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/pkg/log"
)

const fileExt = ".json"

type implRepository struct {
	dir string
	l   log.Logger
}

// New creates a JSON-file backed Repository rooted at dir.
// The directory is created if missing; failure is logged, and later saves will report it.
func New(dir string, l log.Logger) repository.Repository {
	if dir == "" {
		panic("checklist/repository/filestore: dir is required")
	}

	r := &implRepository{dir: dir, l: l}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.Warnf(context.Background(), "%s: could not create data directory %s: %v", r.dsn("New"), dir, err)
	}
	return r
}

func (r *implRepository) path(weekID string) string {
	return filepath.Join(r.dir, weekID+fileExt)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("checklist/repository/filestore.%s", method)
}
