package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"weekly-checklist/internal/checklist/repository/cache"
	"weekly-checklist/internal/checklist/repository/filestore"
	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingStore counts Load calls on the wrapped fakeStore.
type countingStore struct {
	*fakeStore
	loads atomic.Int32
}

type fakeStore struct {
	mu    sync.Mutex
	weeks map[string]*model.WeeklyChecklist
	bad   map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{weeks: map[string]*model.WeeklyChecklist{}, bad: map[string]bool{}}
}

func (s *fakeStore) Save(_ context.Context, cl *model.WeeklyChecklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weeks[cl.WeekID] = cl
	return nil
}

func (s *fakeStore) Load(_ context.Context, weekID string) (*model.WeeklyChecklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bad[weekID] {
		return nil, nil
	}
	return s.weeks[weekID], nil
}

func (s *fakeStore) Exists(_ context.Context, weekID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.weeks[weekID]
	return ok || s.bad[weekID]
}

func (s *fakeStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.weeks)+len(s.bad))
	for id := range s.weeks {
		ids = append(ids, id)
	}
	for id := range s.bad {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *countingStore) Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error) {
	s.loads.Add(1)
	return s.fakeStore.Load(ctx, weekID)
}

func TestGetReadsThroughAndCaches(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{fakeStore: newFakeStore()}
	store.weeks["2025-W1"] = model.NewEmptyChecklist("2025-W1")

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	got, ok := c.Get(ctx, "2025-W1")
	require.True(t, ok)
	assert.Equal(t, "2025-W1", got.WeekID)

	again, ok := c.Get(ctx, "2025-W1")
	require.True(t, ok)
	assert.Same(t, got, again)
	assert.EqualValues(t, 1, store.loads.Load())
	assert.Equal(t, 1, c.Len())
}

func TestGetMissDoesNotFabricate(t *testing.T) {
	c, err := cache.New(newFakeStore(), 8, log.NewNop())
	require.NoError(t, err)

	got, ok := c.Get(context.Background(), "2099-W52")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Zero(t, c.Len())
}

func TestPutDoesNotPersist(t *testing.T) {
	store := newFakeStore()
	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	c.Put("2025-W7", model.NewEmptyChecklist("2025-W7"))

	_, ok := c.Get(context.Background(), "2025-W7")
	assert.True(t, ok)
	assert.False(t, store.Exists(context.Background(), "2025-W7"))
}

func TestInvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	first := model.NewEmptyChecklist("2025-W2")
	store.weeks["2025-W2"] = first

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	got, _ := c.Get(ctx, "2025-W2")
	assert.Same(t, first, got)

	second := model.NewEmptyChecklist("2025-W2")
	store.weeks["2025-W2"] = second

	got, _ = c.Get(ctx, "2025-W2")
	assert.Same(t, first, got, "cache keeps serving the loaded copy")

	c.Invalidate("2025-W2")
	got, _ = c.Get(ctx, "2025-W2")
	assert.Same(t, second, got)
}

func TestWarmSkipsBrokenWeeks(t *testing.T) {
	store := newFakeStore()
	store.weeks["2025-W1"] = model.NewEmptyChecklist("2025-W1")
	store.weeks["2025-W2"] = model.NewEmptyChecklist("2025-W2")
	store.bad["2025-W3"] = true

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	n, err := c.Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, c.Len())
}

func TestWarmFromDisk(t *testing.T) {
	ctx := context.Background()
	store := filestore.New(t.TempDir(), log.NewNop())
	for _, id := range []string{"2025-W1", "2025-W2"} {
		require.NoError(t, store.Save(ctx, model.NewEmptyChecklist(id)))
	}

	c, err := cache.New(store, 0, log.NewNop())
	require.NoError(t, err)

	n, err := c.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestConcurrentPutAndGetNeverTear(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	prior := model.NewEmptyChecklist("2025-W1")
	store.weeks["2025-W1"] = prior

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)
	_, _ = c.Get(ctx, "2025-W1")

	next := model.NewEmptyChecklist("2025-W1")
	next.Resources = append(next.Resources, model.ResourceLink{Title: "new"})

	var wg sync.WaitGroup
	var torn atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Put("2025-W1", next)
		}()
		go func() {
			defer wg.Done()
			got, ok := c.Get(ctx, "2025-W1")
			if !ok || (got != prior && got != next) {
				torn.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, torn.Load())
	got, _ := c.Get(ctx, "2025-W1")
	assert.Same(t, next, got)
}

func TestConcurrentMissesShareOneLoad(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{fakeStore: newFakeStore()}
	store.weeks["2025-W9"] = model.NewEmptyChecklist("2025-W9")

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := c.Get(ctx, "2025-W9")
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, store.loads.Load(), int32(1))
	assert.Equal(t, 1, c.Len())
}

// blockingStore holds Load until release is closed, and gives up with nil, nil
// when the caller's context ends first.
type blockingStore struct {
	*fakeStore
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingStore) Load(ctx context.Context, weekID string) (*model.WeeklyChecklist, error) {
	s.once.Do(func() { close(s.entered) })
	select {
	case <-ctx.Done():
		return nil, nil
	case <-s.release:
	}
	return s.fakeStore.Load(ctx, weekID)
}

func TestGetIgnoresFirstCallerCancellation(t *testing.T) {
	store := &blockingStore{
		fakeStore: newFakeStore(),
		entered:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	store.weeks["2025-W7"] = model.NewEmptyChecklist("2025-W7")

	c, err := cache.New(store, 8, log.NewNop())
	require.NoError(t, err)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leader := make(chan bool, 1)
	go func() {
		_, ok := c.Get(leaderCtx, "2025-W7")
		leader <- ok
	}()

	<-store.entered
	cancel()

	follower := make(chan bool, 1)
	go func() {
		_, ok := c.Get(context.Background(), "2025-W7")
		follower <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	close(store.release)

	assert.True(t, <-follower, "a live caller must not see the first caller's cancellation")
	assert.True(t, <-leader)
	assert.Equal(t, 1, c.Len())
}
