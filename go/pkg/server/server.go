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

// Package server wraps a *scaler.Scaler behind the generated
// pb.ScalerServer interface and is the single place core errors
// become gRPC status codes.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/mycraftmw/scaler/go/pkg/config"
	"github.com/mycraftmw/scaler/go/pkg/model"
	platform_client "github.com/mycraftmw/scaler/go/pkg/platform_client"
	"github.com/mycraftmw/scaler/go/pkg/scaler"
	pb "github.com/mycraftmw/scaler/proto"
)

// ScalerServer adapts a *scaler.Scaler to pb.ScalerServer.
type ScalerServer struct {
	pb.UnimplementedScalerServer
	core *scaler.Scaler
}

// NewScalerServer wraps core for registration on a *grpc.Server.
func NewScalerServer(core *scaler.Scaler) *ScalerServer {
	return &ScalerServer{core: core}
}

func (s *ScalerServer) Assign(ctx context.Context, req *pb.AssignRequest) (*pb.AssignReply, error) {
	if req.MetaData == nil || req.MetaData.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "meta_data is required and must carry a non-empty key")
	}
	meta := model.MetaFromPB(req.MetaData)
	assignment, err := s.core.Assign(ctx, req.RequestId, meta)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AssignReply{
		Status: pb.Status_Ok,
		Assigment: &pb.Assignment{
			RequestId:  assignment.RequestID,
			MetaKey:    assignment.MetaKey,
			InstanceId: assignment.InstanceID,
		},
	}, nil
}

func (s *ScalerServer) Idle(ctx context.Context, req *pb.IdleRequest) (*pb.IdleReply, error) {
	if req.Assigment == nil {
		return nil, status.Error(codes.InvalidArgument, "assigment is required")
	}
	assignment := &model.Assignment{
		RequestID:  req.Assigment.RequestId,
		MetaKey:    req.Assigment.MetaKey,
		InstanceID: req.Assigment.InstanceId,
	}
	var result *model.Result
	if req.Result != nil {
		result = &model.Result{NeedDestroy: req.Result.NeedDestroy, Reason: req.Result.Reason}
	}
	if err := s.core.Idle(ctx, assignment, result); err != nil {
		return nil, toStatus(err)
	}
	return &pb.IdleReply{Status: pb.Status_Ok}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, scaler.ErrMetaRequired), errors.Is(err, scaler.ErrAssignmentRequired),
		errors.Is(err, scaler.ErrInstanceNotFound):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, scaler.ErrPoolClosed):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewGRPCServer builds a *grpc.Server tuned per the interface
// contract (max concurrent streams, keepalive enforcement) with the
// ScalerServer registered on it.
func NewGRPCServer(cfg *config.Config, core *scaler.Scaler) *grpc.Server {
	srv := grpc.NewServer(
		grpc.MaxConcurrentStreams(cfg.MaxConcurrentStreams),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             cfg.KeepAliveMinTime,
			PermitWithoutStream: true,
		}),
	)
	pb.RegisterScalerServer(srv, NewScalerServer(core))
	return srv
}

// DialPlatformWithRetry calls platform_client.New for
// cfg.PlatformAddr until it returns without error, backing off from
// cfg.PlatformDialRetryMinInterval up to
// cfg.PlatformDialRetryMaxInterval between attempts. Errors are
// logged and retried forever, or until ctx is cancelled. New connects
// lazily, so only errors New itself reports (such as a malformed
// address) are retried here; an unreachable Platform does not make
// this call fail or wait, and surfaces later as errors on the
// Platform RPCs.
func DialPlatformWithRetry(ctx context.Context, cfg *config.Config) (platform_client.Client, error) {
	interval := cfg.PlatformDialRetryMinInterval
	for {
		client, err := platform_client.New(cfg.PlatformAddr)
		if err == nil {
			return client, nil
		}
		log.Warn().Err(err).Str("platform_addr", cfg.PlatformAddr).Dur("retry_in", interval).Msg("platform dial failed, retrying")

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		interval *= 2
		if interval > cfg.PlatformDialRetryMaxInterval {
			interval = cfg.PlatformDialRetryMaxInterval
		}
	}
}
