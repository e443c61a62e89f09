package scaler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mycraftmw/scaler/go/pkg/config"
	"github.com/mycraftmw/scaler/go/pkg/model"
)

// fakeClient is a scriptable in-memory platform_client.Client.
type fakeClient struct {
	mu         sync.Mutex
	nextSlotID int64
	failInit   bool
	destroyed  []string
}

func (f *fakeClient) CreateSlot(ctx context.Context, requestId string, resourceConfig *model.SlotResourceConfig) (*model.Slot, error) {
	id := atomic.AddInt64(&f.nextSlotID, 1)
	return &model.Slot{Id: "slot-" + time.Now().Format("150405") + "-" + string(rune('a'+id%26))}, nil
}

func (f *fakeClient) Init(ctx context.Context, requestId, instanceId string, slot *model.Slot, meta *model.Meta) (*model.Instance, error) {
	if f.failInit {
		return nil, errors.New("init refused")
	}
	return &model.Instance{Id: instanceId, Slot: slot, Meta: meta}, nil
}

func (f *fakeClient) DestroySlot(ctx context.Context, requestId, slotId, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, slotId)
	return nil
}

func (f *fakeClient) Close() error { return nil }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.IdlePoolCapacity = 2
	cfg.GCInterval = time.Hour // disabled for these tests
	return cfg
}

func TestAssignColdStartsThenIdleRecycles(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assignment, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.Equal(t, "fn-a", assignment.MetaKey)

	err = s.Idle(context.Background(), assignment, nil)
	require.NoError(t, err)

	// Second Assign should now be served warm from the idle pool.
	assignment2, err := s.Assign(ctx, "req-2", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.Equal(t, assignment.InstanceID, assignment2.InstanceID)
}

func TestAssignRequiresMeta(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	_, err := s.Assign(context.Background(), "req-1", nil)
	require.ErrorIs(t, err, ErrMetaRequired)

	_, err = s.Assign(context.Background(), "req-1", &model.Meta{})
	require.ErrorIs(t, err, ErrMetaRequired)
}

func TestIdleRequiresAssignment(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	err := s.Idle(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrAssignmentRequired)
}

func TestIdleUnknownInstanceIsNotFound(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	err := s.Idle(context.Background(), &model.Assignment{InstanceID: "ghost"}, nil)
	require.ErrorIs(t, err, ErrInstanceNotFound)
}

func TestIdleNeedDestroyDoesNotPool(t *testing.T) {
	fc := &fakeClient{}
	s := New(testConfig(), fc)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assignment, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)

	err = s.Idle(context.Background(), assignment, &model.Result{NeedDestroy: true, Reason: "bad instance"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		return len(fc.destroyed) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestIdleDestroysWhenPoolFull(t *testing.T) {
	fc := &fakeClient{}
	cfg := testConfig()
	cfg.IdlePoolCapacity = 1
	s := New(cfg, fc)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	a1, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	a2, err := s.Assign(ctx, "req-2", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)

	require.NoError(t, s.Idle(context.Background(), a1, nil))
	require.NoError(t, s.Idle(context.Background(), a2, nil))

	require.Eventually(t, func() bool {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		return len(fc.destroyed) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestAssignFallsBackAfterInitFailureEventuallyServedByLaterScheduler(t *testing.T) {
	fc := &fakeClient{failInit: true}
	s := New(testConfig(), fc)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.Error(t, err)

	fc.mu.Lock()
	fc.failInit = false
	fc.mu.Unlock()

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	assignment, err := s.Assign(ctx2, "req-2", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.NotEmpty(t, assignment.InstanceID)
}

func TestConcurrentAssignsForSameKeyEachGetDistinctInstances(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	const n = 5
	results := make(chan *model.Assignment, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			a, err := s.Assign(ctx, "concurrent", &model.Meta{Key: "fn-concurrent"})
			if err != nil {
				errs <- err
				return
			}
			results <- a
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for a := range results {
		require.False(t, seen[a.InstanceID], "instance handed out twice")
		seen[a.InstanceID] = true
	}
	require.Len(t, seen, n)
}

func TestStatsReflectsIdleAndBusyCounts(t *testing.T) {
	s := New(testConfig(), &fakeClient{})
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assignment, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)

	stats := s.Stats()
	require.Equal(t, 1, stats.TotalInstance)
	require.Equal(t, 0, stats.TotalIdleInstance)

	require.NoError(t, s.Idle(context.Background(), assignment, nil))
	stats = s.Stats()
	require.Equal(t, 1, stats.TotalInstance)
	require.Equal(t, 1, stats.TotalIdleInstance)
}
