package scaler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mycraftmw/scaler/go/pkg/model"
)

func TestGCSweepDestroysExpiredIdleInstances(t *testing.T) {
	fc := &fakeClient{}
	cfg := testConfig()
	cfg.IdleDurationBeforeGC = 10 * time.Millisecond
	s := New(cfg, fc)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assignment, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.NoError(t, s.Idle(context.Background(), assignment, nil))

	time.Sleep(20 * time.Millisecond)
	s.gcSweep()

	require.Equal(t, 0, s.idlePool.Len("fn-a"))
	require.Eventually(t, func() bool {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		return len(fc.destroyed) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestGCSweepKeepsFreshIdleInstances(t *testing.T) {
	fc := &fakeClient{}
	cfg := testConfig()
	cfg.IdleDurationBeforeGC = time.Hour
	s := New(cfg, fc)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assignment, err := s.Assign(ctx, "req-1", &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.NoError(t, s.Idle(context.Background(), assignment, nil))

	s.gcSweep()

	require.Equal(t, 1, s.idlePool.Len("fn-a"))
	fc.mu.Lock()
	defer fc.mu.Unlock()
	require.Empty(t, fc.destroyed)
}
