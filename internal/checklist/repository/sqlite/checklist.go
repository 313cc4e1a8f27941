package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"weekly-checklist/internal/checklist"
	repo "weekly-checklist/internal/checklist/repository"
	"weekly-checklist/internal/model"
)

// Save upserts cl as pretty-printed JSON keyed by its week id.
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

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO checklists (week_id, payload) VALUES (?, ?)
		 ON CONFLICT(week_id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		cl.WeekID, string(data),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: upsert %s: %v", r.dsn("Save"), cl.WeekID, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	r.l.Infof(ctx, "%s: saved checklist %s", r.dsn("Save"), cl.WeekID)
	return nil
}

// Load returns nil, nil for a missing row, a query failure or an unparsable payload.
func (r *implRepository) Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error) {
	if !checklist.IsSafeWeekID(weekID) {
		r.l.Warnf(ctx, "%s: refusing unsafe week id %q", r.dsn("Load"), weekID)
		return nil, nil
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM checklists WHERE week_id = ?`, weekID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: error loading checklist %s: %v", r.dsn("Load"), weekID, err)
		return nil, nil
	}

	var cl model.WeeklyChecklist
	if err := json.Unmarshal([]byte(payload), &cl); err != nil {
		r.l.Errorf(ctx, "%s: error loading checklist %s: %v", r.dsn("Load"), weekID, err)
		return nil, nil
	}
	cl.Normalize(weekID)
	return &cl, nil
}

func (r *implRepository) Exists(ctx context.Context, weekID string) bool {
	if !checklist.IsSafeWeekID(weekID) {
		return false
	}
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM checklists WHERE week_id = ?`, weekID).Scan(&one)
	return err == nil
}

// List returns every stored week id in byte order.
func (r *implRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT week_id FROM checklists ORDER BY week_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return ids, nil
}
