package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/log"
)

// DefaultSize is the entry limit used when New is given a non-positive size.
const DefaultSize = 1024

// Cache is a bounded week id → checklist map in front of a Repository.
// Stored checklists are treated as immutable; Put swaps the pointer.
type Cache struct {
	entries *lru.Cache[string, *model.WeeklyChecklist]
	store   repository.Repository
	loads   singleflight.Group
	l       log.Logger
}

var _ repository.Cache = (*Cache)(nil)

// New creates an empty Cache backed by store.
func New(store repository.Repository, size int, l log.Logger) (*Cache, error) {
	if store == nil {
		return nil, fmt.Errorf("checklist/repository/cache: store is required")
	}
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[string, *model.WeeklyChecklist](size)
	if err != nil {
		return nil, fmt.Errorf("checklist/repository/cache: %w", err)
	}

	return &Cache{
		entries: entries,
		store:   store,
		l:       l,
	}, nil
}

// Warm loads every stored week into the cache. Weeks that fail to load are skipped.
// It returns the number of weeks loaded.
func (c *Cache) Warm(ctx context.Context) (int, error) {
	ids, err := c.store.List(ctx)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, id := range ids {
		cl, err := c.store.Load(ctx, id)
		if err != nil || cl == nil {
			c.l.Warnf(ctx, "checklist/repository/cache.Warm: skipping %s: could not load", id)
			continue
		}
		c.entries.Add(id, cl)
		loaded++
	}

	c.l.Infof(ctx, "checklist/repository/cache.Warm: loaded %d checklist(s) from disk", loaded)
	return loaded, nil
}

// Get returns the cached checklist for weekID, reading through to the store on a miss.
// Concurrent misses for the same week share one disk load.
func (c *Cache) Get(ctx context.Context, weekID string) (*model.WeeklyChecklist, bool) {
	if cl, ok := c.entries.Get(weekID); ok {
		return cl, true
	}

	v, _, _ := c.loads.Do(weekID, func() (any, error) {
		if cl, ok := c.entries.Get(weekID); ok {
			return cl, nil
		}
		// Callers joined on this load must not inherit the first caller's cancellation.
		cl, err := c.store.Load(context.WithoutCancel(ctx), weekID)
		if err != nil || cl == nil {
			return (*model.WeeklyChecklist)(nil), err
		}
		// An import may have Put a newer value while the file was read.
		if found, _ := c.entries.ContainsOrAdd(weekID, cl); found {
			if cur, ok := c.entries.Get(weekID); ok {
				return cur, nil
			}
		}
		return cl, nil
	})

	cl, _ := v.(*model.WeeklyChecklist)
	return cl, cl != nil
}

// Put replaces the cached checklist for weekID. It does not persist anything.
func (c *Cache) Put(weekID string, cl *model.WeeklyChecklist) {
	c.entries.Add(weekID, cl)
}

// Invalidate drops weekID so the next Get reloads it from the store.
func (c *Cache) Invalidate(weekID string) {
	c.entries.Remove(weekID)
}

// Len returns the number of cached weeks.
func (c *Cache) Len() int {
	return c.entries.Len()
}
