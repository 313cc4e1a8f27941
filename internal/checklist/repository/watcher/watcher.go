package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"weekly-checklist/pkg/log"
)

// Invalidator drops a cached week so the next read reloads it.
type Invalidator interface {
	Invalidate(weekID string)
}

// Watcher invalidates cache entries when <weekId>.json files change outside the server.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	target  Invalidator
	l       log.Logger
}

// New starts watching dir. Call Run to process events; Run closes the watcher.
func New(dir string, target Invalidator, l log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("checklist/repository/watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("checklist/repository/watcher: watch %s: %w", dir, err)
	}

	return &Watcher{
		watcher: fw,
		dir:     dir,
		target:  target,
		l:       l,
	}, nil
}

// Run blocks until ctx is cancelled or the event stream closes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	w.l.Infof(ctx, "checklist/repository/watcher.Run: watching %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.l.Errorf(ctx, "checklist/repository/watcher.Run: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return // chmod
	}

	weekID, ok := weekIDFromPath(event.Name)
	if !ok {
		return
	}

	w.l.Debugf(ctx, "checklist/repository/watcher.handleEvent: %s on %s, invalidating", event.Op, weekID)
	w.target.Invalidate(weekID)
}

func weekIDFromPath(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
		return "", false
	}
	id := strings.TrimSuffix(name, ".json")
	return id, id != ""
}
