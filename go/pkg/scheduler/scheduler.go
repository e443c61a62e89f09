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

// Package scheduler runs the pre-warm pipeline that builds one
// Instance and deposits it in the idle pool. It is fire-and-forget
// from Assign's perspective and carries no caller cancellation.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mycraftmw/scaler/go/pkg/idlepool"
	"github.com/mycraftmw/scaler/go/pkg/metrics"
	"github.com/mycraftmw/scaler/go/pkg/model"
	platform_client "github.com/mycraftmw/scaler/go/pkg/platform_client"
	pb "github.com/mycraftmw/scaler/proto"
)

// defaultPreWarmTimeout bounds a single CreateSlot or Init call when
// meta carries no timeout of its own.
const defaultPreWarmTimeout = 60 * time.Second

// Scheduler builds and pools new instances on the Platform.
type Scheduler struct {
	platformClient platform_client.Client
	idlePool       *idlepool.Pool
}

// New returns a Scheduler wired to the given Platform Client and
// Idle Pool.
func New(client platform_client.Client, pool *idlepool.Pool) *Scheduler {
	return &Scheduler{platformClient: client, idlePool: pool}
}

// Run creates and initialises one instance for meta and commits it
// to the Idle Pool. Every failure is logged and the task simply
// exits; there is no caller waiting on its return value, so errors
// never propagate anywhere but the log.
func (s *Scheduler) Run(ctx context.Context, requestID string, meta *model.Meta) {
	metrics.ObserveColdStart(meta.Key)

	rpcTimeout := defaultPreWarmTimeout
	if meta.TimeoutInSecs > 0 {
		rpcTimeout = time.Duration(meta.TimeoutInSecs) * time.Second
	}

	resourceConfig := &model.SlotResourceConfig{
		ResourceConfig: pb.ResourceConfig{MemoryInMegabytes: meta.MemoryInMb},
	}
	createCtx, cancelCreate := context.WithTimeout(ctx, rpcTimeout)
	slot, err := s.platformClient.CreateSlot(createCtx, requestID, resourceConfig)
	cancelCreate()
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Str("meta_key", meta.Key).Msg("create slot failed, scheduler exiting")
		return
	}

	instanceID := uuid.New().String()
	initCtx, cancelInit := context.WithTimeout(ctx, rpcTimeout)
	instance, err := s.platformClient.Init(initCtx, requestID, instanceID, slot, meta)
	cancelInit()
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Str("instance_id", instanceID).Msg("init failed, destroying slot")
		destroyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if derr := s.platformClient.DestroySlot(destroyCtx, requestID, slot.Id, "init failed"); derr != nil {
			log.Error().Err(derr).Str("slot_id", slot.Id).Msg("best-effort destroy of failed-init slot also failed")
		}
		metrics.ObserveInstanceDestroyed(meta.Key, metrics.ReasonInitFailed)
		return
	}

	instance.LastIdleTime = time.Now()
	if err := s.idlePool.Put(ctx, instance); err != nil {
		log.Warn().Err(err).Str("instance_id", instance.Id).Msg("scheduler could not commit instance to idle pool")
		return
	}

	metrics.ObserveInstanceCreated(meta.Key)
	log.Debug().Str("request_id", requestID).Str("instance_id", instance.Id).
		Str("meta_key", meta.Key).Uint64("init_duration_ms", instance.InitDurationMs).
		Msg("instance created and pooled")
}
