package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mycraftmw/scaler/go/pkg/config"
	"github.com/mycraftmw/scaler/go/pkg/model"
	"github.com/mycraftmw/scaler/go/pkg/scaler"
	pb "github.com/mycraftmw/scaler/proto"
)

type fakeClient struct{ n int }

func (f *fakeClient) CreateSlot(ctx context.Context, requestId string, rc *model.SlotResourceConfig) (*model.Slot, error) {
	f.n++
	return &model.Slot{Id: "slot"}, nil
}
func (f *fakeClient) Init(ctx context.Context, requestId, instanceId string, slot *model.Slot, meta *model.Meta) (*model.Instance, error) {
	return &model.Instance{Id: instanceId, Slot: slot, Meta: meta}, nil
}
func (f *fakeClient) DestroySlot(ctx context.Context, requestId, slotId, reason string) error { return nil }
func (f *fakeClient) Close() error                                                            { return nil }

func testCore() *scaler.Scaler {
	cfg := config.Default()
	cfg.GCInterval = time.Hour
	return scaler.New(cfg, &fakeClient{})
}

func TestAssignRejectsMissingMeta(t *testing.T) {
	srv := NewScalerServer(testCore())
	_, err := srv.Assign(context.Background(), &pb.AssignRequest{RequestId: "r1"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestAssignThenIdleRoundTrip(t *testing.T) {
	srv := NewScalerServer(testCore())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	reply, err := srv.Assign(ctx, &pb.AssignRequest{
		RequestId: "r1",
		MetaData:  &pb.Meta{Key: "fn-a"},
	})
	require.NoError(t, err)
	require.Equal(t, pb.Status_Ok, reply.Status)
	require.NotEmpty(t, reply.Assigment.InstanceId)

	idleReply, err := srv.Idle(context.Background(), &pb.IdleRequest{Assigment: reply.Assigment})
	require.NoError(t, err)
	require.Equal(t, pb.Status_Ok, idleReply.Status)
}

func TestIdleUnknownInstanceIsInvalidArgument(t *testing.T) {
	srv := NewScalerServer(testCore())
	_, err := srv.Idle(context.Background(), &pb.IdleRequest{
		Assigment: &pb.Assignment{InstanceId: "ghost"},
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}

func TestIdleRejectsMissingAssignment(t *testing.T) {
	srv := NewScalerServer(testCore())
	_, err := srv.Idle(context.Background(), &pb.IdleRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}
