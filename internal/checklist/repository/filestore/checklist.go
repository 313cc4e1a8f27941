package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"weekly-checklist/internal/checklist"
	repo "weekly-checklist/internal/checklist/repository"
	"weekly-checklist/internal/model"
)

// Save writes cl as pretty-printed JSON to <weekId>.json, replacing any existing file.
// The data goes to a temp file first and is renamed into place.
func (r *implRepository) Save(ctx context.Context, cl *model.WeeklyChecklist) error {
	if cl == nil {
		return fmt.Errorf("%w: nil checklist", repo.ErrFailedToSave)
	}
	if !checklist.IsSafeWeekID(cl.WeekID) {
		return fmt.Errorf("%w: %q", repo.ErrUnsafeWeekID, cl.WeekID)
	}

	data, err := json.MarshalIndent(cl, "", "  ")
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal %s: %v", r.dsn("Save"), cl.WeekID, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	data = append(data, '\n')

	path := r.path(cl.WeekID)
	if err := r.writeFile(path, data); err != nil {
		r.l.Errorf(ctx, "%s: write %s: %v", r.dsn("Save"), path, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	r.l.Infof(ctx, "%s: saved checklist to %s", r.dsn("Save"), path)
	return nil
}

func (r *implRepository) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(r.dir, ".checklist-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Load reads <weekId>.json. Absent, unreadable and unparsable files all return nil, nil.
func (r *implRepository) Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error) {
	if !checklist.IsSafeWeekID(weekID) {
		r.l.Warnf(ctx, "%s: refusing unsafe week id %q", r.dsn("Load"), weekID)
		return nil, nil
	}

	path := r.path(weekID)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil // not found → nil, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: error loading checklist %s: %v", r.dsn("Load"), weekID, err)
		return nil, nil
	}

	var cl model.WeeklyChecklist
	if err := json.Unmarshal(data, &cl); err != nil {
		r.l.Errorf(ctx, "%s: error loading checklist %s: %v", r.dsn("Load"), weekID, err)
		return nil, nil
	}
	cl.Normalize(weekID)

	r.l.Debugf(ctx, "%s: loaded checklist from %s", r.dsn("Load"), path)
	return &cl, nil
}

// Exists reports whether <weekId>.json is present, without parsing it.
func (r *implRepository) Exists(ctx context.Context, weekID string) bool {
	if !checklist.IsSafeWeekID(weekID) {
		return false
	}
	info, err := os.Stat(r.path(weekID))
	return err == nil && info.Mode().IsRegular()
}

// List returns the week ids of every *.json file in the data directory, sorted.
func (r *implRepository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(ids)
	return ids, nil
}
