package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"weekly-checklist/pkg/log"
)

type recorder struct {
	ids chan string
}

func (r *recorder) Invalidate(weekID string) {
	r.ids <- weekID
}

func TestWeekIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "/data/checklists/2025-W1.json", want: "2025-W1", ok: true},
		{path: "2099-W52.json", want: "2099-W52", ok: true},
		{path: "/data/checklists/.checklist-123.tmp", ok: false},
		{path: "/data/checklists/notes.txt", ok: false},
		{path: "/data/checklists/.json", ok: false},
	}

	for _, tt := range tests {
		got, ok := weekIDFromPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestWatcherInvalidatesOnExternalWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	rec := &recorder{ids: make(chan string, 16)}

	w, err := New(dir, rec, log.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025-W3.json"), []byte(`{}`), 0o644))

	select {
	case id := <-rec.ids:
		assert.Equal(t, "2025-W3", id)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for invalidation")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewFailsForMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), &recorder{}, log.NewNop())
	assert.Error(t, err)
}
