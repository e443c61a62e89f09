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

// Package platform_client implements the Platform Client (component
// A): the gRPC stub wrapper every other component uses to talk to
// the compute Platform. It owns the single ClientConn, translates
// non-Ok Status replies into errors, and records a request/duration
// metric per RPC.
package platform_client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mycraftmw/scaler/go/pkg/metrics"
	"github.com/mycraftmw/scaler/go/pkg/model"
	pb "github.com/mycraftmw/scaler/proto"
)

// Client is the narrow surface the rest of the scaler needs from the
// Platform; it hides the generated stub and the wire message shapes.
type Client interface {
	CreateSlot(ctx context.Context, requestId string, resourceConfig *model.SlotResourceConfig) (*model.Slot, error)
	Init(ctx context.Context, requestId, instanceId string, slot *model.Slot, meta *model.Meta) (*model.Instance, error)
	DestroySlot(ctx context.Context, requestId, slotId, reason string) error
	Close() error
}

type client struct {
	conn *grpc.ClientConn
	stub pb.PlatformClient
}

// New dials addr and returns a Client. The dial is blocking-free
// (lazy connect); the first RPC pays the connection-establishment
// cost.
func New(addr string) (Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial platform at %s: %w", addr, err)
	}
	return &client{
		conn: conn,
		stub: pb.NewPlatformClient(conn),
	}, nil
}

// NewFromConn wraps an already-established connection, used by
// tests that dial over an in-memory bufconn listener instead of a
// real socket.
func NewFromConn(conn *grpc.ClientConn) Client {
	return &client{conn: conn, stub: pb.NewPlatformClient(conn)}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func (c *client) CreateSlot(ctx context.Context, requestId string, resourceConfig *model.SlotResourceConfig) (*model.Slot, error) {
	start := time.Now()
	reply, err := c.stub.CreateSlot(ctx, &pb.CreateSlotRequest{
		RequestId:      requestId,
		ResourceConfig: &resourceConfig.ResourceConfig,
	})
	metrics.ObservePlatformRPC("create_slot", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("create slot request %s: %w", requestId, err)
	}
	if reply.Status != pb.Status_Ok {
		return nil, fmt.Errorf("create slot request %s: platform returned %s", requestId, reply.Status)
	}
	if reply.Slot == nil {
		return nil, fmt.Errorf("create slot request %s: platform reply carries no slot", requestId)
	}
	log.Debug().Str("request_id", requestId).Str("slot_id", reply.Slot.Id).Msg("slot created")
	return &model.Slot{
		Id:             reply.Slot.Id,
		ResourceConfig: reply.Slot.ResourceConfig,
	}, nil
}

func (c *client) Init(ctx context.Context, requestId, instanceId string, slot *model.Slot, meta *model.Meta) (*model.Instance, error) {
	start := time.Now()
	reply, err := c.stub.Init(ctx, &pb.InitRequest{
		RequestId:  requestId,
		SlotId:     slot.Id,
		InstanceId: instanceId,
		MetaData: &pb.Meta{
			Key:           meta.Key,
			Runtime:       meta.Runtime,
			MemoryInMb:    meta.MemoryInMb,
			TimeoutInSecs: meta.TimeoutInSecs,
		},
	})
	metrics.ObservePlatformRPC("init", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("init request %s instance %s: %w", requestId, instanceId, err)
	}
	if reply.Status != pb.Status_Ok {
		return nil, fmt.Errorf("init request %s instance %s: platform returned %s", requestId, instanceId, reply.Status)
	}
	log.Debug().Str("request_id", requestId).Str("instance_id", instanceId).Uint64("init_duration_ms", reply.InitDurationInMs).Msg("instance initialised")
	createTimeMs := reply.CreateTime
	if createTimeMs == 0 {
		createTimeMs = uint64(time.Now().UnixMilli())
	}
	return &model.Instance{
		Id:             instanceId,
		Slot:           slot,
		Meta:           meta,
		CreateTimeMs:   createTimeMs,
		InitDurationMs: reply.InitDurationInMs,
	}, nil
}

func (c *client) DestroySlot(ctx context.Context, requestId, slotId, reason string) error {
	start := time.Now()
	reply, err := c.stub.DestroySlot(ctx, &pb.DestroySlotRequest{
		RequestId: requestId,
		Id:        slotId,
		Reason:    reason,
	})
	metrics.ObservePlatformRPC("destroy_slot", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("destroy slot %s request %s: %w", slotId, requestId, err)
	}
	if reply.Status != pb.Status_Ok {
		return fmt.Errorf("destroy slot %s request %s: platform returned %s", slotId, requestId, reply.Status)
	}
	return nil
}
