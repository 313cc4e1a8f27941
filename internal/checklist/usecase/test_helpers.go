package usecase

import (
	"context"
	"sync"

	"weekly-checklist/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory Repository whose Save can be made to fail.
type mockRepo struct {
	mu      sync.Mutex
	weeks   map[string]*model.WeeklyChecklist
	saveErr error
	listErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{weeks: map[string]*model.WeeklyChecklist{}}
}

func (r *mockRepo) Save(ctx context.Context, cl *model.WeeklyChecklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.weeks[cl.WeekID] = cl
	return nil
}

func (r *mockRepo) Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.weeks[weekID], nil
}

func (r *mockRepo) Exists(ctx context.Context, weekID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.weeks[weekID]
	return ok
}

func (r *mockRepo) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	ids := make([]string, 0, len(r.weeks))
	for id := range r.weeks {
		ids = append(ids, id)
	}
	return ids, nil
}

// mockCache is a plain map cache that reads through to its repo.
type mockCache struct {
	mu      sync.Mutex
	repo    *mockRepo
	entries map[string]*model.WeeklyChecklist
}

func newMockCache(repo *mockRepo) *mockCache {
	return &mockCache{repo: repo, entries: map[string]*model.WeeklyChecklist{}}
}

func (c *mockCache) Get(ctx context.Context, weekID string) (*model.WeeklyChecklist, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.entries[weekID]; ok {
		return cl, true
	}
	cl, _ := c.repo.Load(ctx, weekID)
	if cl == nil {
		return nil, false
	}
	c.entries[weekID] = cl
	return cl, true
}

func (c *mockCache) Put(weekID string, cl *model.WeeklyChecklist) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[weekID] = cl
}

func (c *mockCache) Invalidate(weekID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, weekID)
}

func (c *mockCache) peek(weekID string) (*model.WeeklyChecklist, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cl, ok := c.entries[weekID]
	return cl, ok
}
