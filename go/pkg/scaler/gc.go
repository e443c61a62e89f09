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

package scaler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mycraftmw/scaler/go/pkg/metrics"
	"github.com/mycraftmw/scaler/go/pkg/model"
)

// gcLoop ticks a supplemental, non-core reclamation pass over every
// known key's idle instances. It never touches busy instances, since
// those live in the directory, not a pool lane, and it never pushes
// a lane over capacity since it only ever puts back instances it
// just drained from that same lane.
func (s *Scaler) gcLoop() {
	ticker := time.NewTicker(s.config.GCInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.gcStop:
			return
		case <-ticker.C:
			s.gcSweep()
			s.Stats()
		}
	}
}

func (s *Scaler) gcSweep() {
	for _, key := range s.registry.Keys() {
		drained := s.idlePool.Drain(key)
		if len(drained) == 0 {
			continue
		}
		for _, inst := range drained {
			if time.Since(inst.LastIdleTime) > s.config.IdleDurationBeforeGC {
				s.gcDestroy(inst)
				continue
			}
			if !s.idlePool.TryPut(inst) {
				// A concurrent Idle or Scheduler commit may have
				// refilled the lane since the drain; destroy the
				// instance that no longer fits.
				s.gcDestroy(inst)
			}
		}
	}
}

func (s *Scaler) gcDestroy(inst *model.Instance) {
	idleDuration := time.Since(inst.LastIdleTime)
	reason := fmt.Sprintf("idle duration %s exceeded configured %s", idleDuration, s.config.IdleDurationBeforeGC)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.platformClient.DestroySlot(ctx, uuid.NewString(), inst.Slot.Id, reason); err != nil {
		log.Error().Err(err).Str("instance_id", inst.Id).Str("slot_id", inst.Slot.Id).Msg("gc sweep destroy failed")
		return
	}
	metrics.ObserveInstanceDestroyed(inst.Meta.Key, metrics.ReasonGCSweep)
}
