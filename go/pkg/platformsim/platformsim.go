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

// Package platformsim implements the Platform Simulator (component
// J): a minimal in-process pb.PlatformServer used standalone by
// cmd/platformsim and directly, with no network, by integration
// tests that exercise the full Assign/Idle/Scheduler pipeline.
package platformsim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	pb "github.com/mycraftmw/scaler/proto"
)

// Simulator fakes a compute Platform. Every CreateSlot succeeds with
// a monotonically increasing slot id unless FailNextCreate is armed;
// Init reports InitDuration as latency and honors FailNextInit;
// DestroySlot always succeeds and simply forgets the slot.
type Simulator struct {
	pb.UnimplementedPlatformServer

	mu             sync.Mutex
	nextSlotID     int64
	slots          map[string]struct{}
	InitDuration   time.Duration
	FailNextCreate bool
	FailNextInit   bool
}

// New returns a Simulator with no artificial init latency and no
// armed failures.
func New() *Simulator {
	return &Simulator{slots: make(map[string]struct{})}
}

func (s *Simulator) CreateSlot(ctx context.Context, req *pb.CreateSlotRequest) (*pb.CreateSlotReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextCreate {
		s.FailNextCreate = false
		return &pb.CreateSlotReply{Status: pb.Status_InternalError}, nil
	}

	s.nextSlotID++
	slotID := fmt.Sprintf("sim-slot-%d", s.nextSlotID)
	s.slots[slotID] = struct{}{}
	log.Debug().Str("request_id", req.RequestId).Str("slot_id", slotID).Msg("platformsim: slot created")
	return &pb.CreateSlotReply{
		Status: pb.Status_Ok,
		Slot:   &pb.Slot{Id: slotID, ResourceConfig: req.ResourceConfig},
	}, nil
}

func (s *Simulator) Init(ctx context.Context, req *pb.InitRequest) (*pb.InitReply, error) {
	s.mu.Lock()
	failInit := s.FailNextInit
	if failInit {
		s.FailNextInit = false
	}
	latency := s.InitDuration
	s.mu.Unlock()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if failInit {
		return &pb.InitReply{Status: pb.Status_InternalError}, nil
	}

	return &pb.InitReply{
		Status:           pb.Status_Ok,
		CreateTime:       uint64(time.Now().UnixMilli()),
		InitDurationInMs: uint64(latency.Milliseconds()),
	}, nil
}

func (s *Simulator) DestroySlot(ctx context.Context, req *pb.DestroySlotRequest) (*pb.DestroySlotReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, req.Id)
	log.Debug().Str("request_id", req.RequestId).Str("slot_id", req.Id).Str("reason", req.Reason).Msg("platformsim: slot destroyed")
	return &pb.DestroySlotReply{Status: pb.Status_Ok}, nil
}

// SlotCount reports how many slots the simulator currently believes
// are live, for assertions in tests.
func (s *Simulator) SlotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
