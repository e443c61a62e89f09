/*
Copyright 2023 The Alibaba Cloud Serverless Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package scaler is the core Assign/Idle state machine, tying the
// meta registry, idle pool, instance directory and scheduler
// together. It returns plain Go errors; translating them to gRPC
// status codes is the transport's job, not this package's.
package scaler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mycraftmw/scaler/go/pkg/config"
	"github.com/mycraftmw/scaler/go/pkg/directory"
	"github.com/mycraftmw/scaler/go/pkg/idlepool"
	"github.com/mycraftmw/scaler/go/pkg/metrics"
	"github.com/mycraftmw/scaler/go/pkg/model"
	platform_client "github.com/mycraftmw/scaler/go/pkg/platform_client"
	"github.com/mycraftmw/scaler/go/pkg/registry"
	"github.com/mycraftmw/scaler/go/pkg/scheduler"
)

// ScalerStats is a point-in-time snapshot for introspection and the
// Prometheus gauges in package metrics.
type ScalerStats struct {
	TotalInstance         int
	TotalIdleInstance      int
	MaxConcurrentRequests int64
	AvgRequestCost        time.Duration
}

// Scaler is the single process-wide instance tying every component
// together. One Scaler serves every meta_key; the Idle Pool and
// Directory are themselves keyed internally.
type Scaler struct {
	config         *config.Config
	registry       *registry.Registry
	idlePool       *idlepool.Pool
	directory      *directory.Directory
	platformClient platform_client.Client
	scheduler      *scheduler.Scheduler
	runtimeStatus  *RuntimeStatus

	waitingMu sync.Mutex
	waiting   map[string]int

	wg     sync.WaitGroup
	gcStop chan struct{}
}

// New wires up a Scaler and starts its background GC sweep. Callers
// must call Close on shutdown to stop the sweep.
func New(cfg *config.Config, client platform_client.Client) *Scaler {
	pool := idlepool.New(cfg.IdlePoolCapacity)
	s := &Scaler{
		config:         cfg,
		registry:       registry.New(),
		idlePool:       pool,
		directory:      directory.New(),
		platformClient: client,
		scheduler:      scheduler.New(client, pool),
		runtimeStatus:  NewRuntimeStatus(cfg.RctRate),
		waiting:        make(map[string]int),
		gcStop:         make(chan struct{}),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.gcLoop()
	}()

	return s
}

// Assign satisfies a caller's request for an instance of meta,
// serving from the Idle Pool when possible and otherwise spawning a
// detached Scheduler task and blocking on the pool until it (or a
// concurrent Idle recycle) produces one.
func (s *Scaler) Assign(ctx context.Context, requestID string, meta *model.Meta) (*model.Assignment, error) {
	if meta == nil || meta.Key == "" {
		return nil, ErrMetaRequired
	}

	start := time.Now()
	s.runtimeStatus.AssignStart(start)
	log.Debug().Str("request_id", requestID).Str("meta_key", meta.Key).Msg("assign")

	s.registry.Insert(meta)

	if inst, ok := s.idlePool.TryTake(meta.Key); ok {
		s.directory.Insert(inst)
		metrics.ObserveAssign("idle_hit", time.Since(start))
		s.runtimeStatus.AssignReturn(requestID)
		log.Debug().Str("request_id", requestID).Str("instance_id", inst.Id).Msg("assign served from idle pool")
		return &model.Assignment{RequestID: requestID, MetaKey: meta.Key, InstanceID: inst.Id}, nil
	}

	go s.scheduler.Run(context.Background(), requestID, meta)

	s.adjustWaiting(meta.Key, 1)
	inst, err := s.idlePool.Take(ctx, meta.Key)
	s.adjustWaiting(meta.Key, -1)
	if err != nil {
		metrics.ObserveAssign("timeout", time.Since(start))
		s.runtimeStatus.AssignReturn(requestID)
		return nil, err
	}

	s.directory.Insert(inst)
	metrics.ObserveAssign("cold_start", time.Since(start))
	s.runtimeStatus.AssignReturn(requestID)
	log.Debug().Str("request_id", requestID).Str("instance_id", inst.Id).Msg("assign served via scheduler pre-warm")
	return &model.Assignment{RequestID: requestID, MetaKey: meta.Key, InstanceID: inst.Id}, nil
}

// adjustWaiting updates the count of Assign calls blocked on key's
// idle pool lane and reports it on the waiting_assigns gauge.
func (s *Scaler) adjustWaiting(key string, delta int) {
	s.waitingMu.Lock()
	n := s.waiting[key] + delta
	s.waiting[key] = n
	s.waitingMu.Unlock()
	metrics.SetWaitingAssigns(key, n)
}

// Idle returns an instance to circulation, or destroys it if the
// caller asked for that or the pool for its key is already full.
// Idle always succeeds once the assignment itself is valid;
// destruction failures are logged and swallowed.
func (s *Scaler) Idle(ctx context.Context, assignment *model.Assignment, result *model.Result) error {
	if assignment == nil {
		return ErrAssignmentRequired
	}

	s.runtimeStatus.IdleStart(assignment.RequestID)

	inst, ok := s.directory.Remove(assignment.InstanceID)
	if !ok {
		return ErrInstanceNotFound
	}
	inst.LastIdleTime = time.Now()
	inst.Busy = false

	if result != nil && result.NeedDestroy {
		metrics.ObserveIdle("destroyed")
		destroyReason := result.Reason
		if destroyReason == "" {
			destroyReason = "caller requested"
		}
		go s.destroy(assignment.RequestID, inst, destroyReason, metrics.ReasonCallerRequested)
		return nil
	}

	if s.idlePool.TryPut(inst) {
		metrics.ObserveIdle("pooled")
		return nil
	}

	metrics.ObserveIdle("destroyed")
	go s.destroy(assignment.RequestID, inst, "pool full", metrics.ReasonPoolFull)
	return nil
}

// destroy tears an instance's slot down. reason is the free-form
// string sent to the Platform and logged; metricReason is one of the
// fixed metrics.Reason* values so the destroyed-instance counter's
// label never sees unbounded cardinality.
func (s *Scaler) destroy(requestID string, inst *model.Instance, reason, metricReason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.platformClient.DestroySlot(ctx, requestID, inst.Slot.Id, reason); err != nil {
		log.Error().Err(err).Str("instance_id", inst.Id).Str("slot_id", inst.Slot.Id).Msg("destroy slot failed")
		return
	}
	metrics.ObserveInstanceDestroyed(inst.Meta.Key, metricReason)
}

// Stats returns an aggregate snapshot across every known meta_key.
func (s *Scaler) Stats() ScalerStats {
	total := s.directory.Len()
	idleTotal := 0
	for _, key := range s.registry.Keys() {
		n := s.idlePool.Len(key)
		idleTotal += n
		total += n
		metrics.SetIdlePoolSize(key, n)
		metrics.SetBusyInstances(key, s.directory.CountByKey(key))
	}
	return ScalerStats{
		TotalInstance:         total,
		TotalIdleInstance:      idleTotal,
		MaxConcurrentRequests: s.runtimeStatus.MaxConcurrentRequests(),
		AvgRequestCost:        s.runtimeStatus.AvgRequestCost(),
	}
}

// Close stops the GC sweep and waits for it to exit. It does not
// wait for in-flight Scheduler tasks; those are intentionally
// detached and best-effort on shutdown.
func (s *Scaler) Close() {
	close(s.gcStop)
	s.wg.Wait()
}
