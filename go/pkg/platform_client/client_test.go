package platform_client

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mycraftmw/scaler/go/pkg/model"
	pb "github.com/mycraftmw/scaler/proto"
)

// fakePlatform is a minimal, scriptable pb.PlatformServer used only
// to exercise the Client's request/reply translation.
type fakePlatform struct {
	pb.UnimplementedPlatformServer
	createStatus pb.Status
	initStatus   pb.Status
	destroyErr   bool
}

func (f *fakePlatform) CreateSlot(ctx context.Context, req *pb.CreateSlotRequest) (*pb.CreateSlotReply, error) {
	return &pb.CreateSlotReply{
		Status: f.createStatus,
		Slot:   &pb.Slot{Id: "slot-1", ResourceConfig: req.ResourceConfig},
	}, nil
}

func (f *fakePlatform) Init(ctx context.Context, req *pb.InitRequest) (*pb.InitReply, error) {
	return &pb.InitReply{
		Status:           f.initStatus,
		InitDurationInMs: 42,
	}, nil
}

func (f *fakePlatform) DestroySlot(ctx context.Context, req *pb.DestroySlotRequest) (*pb.DestroySlotReply, error) {
	if f.destroyErr {
		return &pb.DestroySlotReply{Status: pb.Status_InternalError}, nil
	}
	return &pb.DestroySlotReply{Status: pb.Status_Ok}, nil
}

func dialFake(t *testing.T, fake *fakePlatform) (Client, func()) {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	pb.RegisterPlatformServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	c := &client{conn: conn, stub: pb.NewPlatformClient(conn)}
	return c, func() {
		_ = conn.Close()
		srv.Stop()
	}
}

func TestCreateSlotSuccess(t *testing.T) {
	fake := &fakePlatform{createStatus: pb.Status_Ok}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	slot, err := c.CreateSlot(context.Background(), "req-1", &model.SlotResourceConfig{
		ResourceConfig: pb.ResourceConfig{MemoryInMegabytes: 128},
	})
	require.NoError(t, err)
	require.Equal(t, "slot-1", slot.Id)
}

func TestCreateSlotNonOkStatusIsError(t *testing.T) {
	fake := &fakePlatform{createStatus: pb.Status_InternalError}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	_, err := c.CreateSlot(context.Background(), "req-1", &model.SlotResourceConfig{})
	require.Error(t, err)
}

func TestInitSuccess(t *testing.T) {
	fake := &fakePlatform{initStatus: pb.Status_Ok}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	inst, err := c.Init(context.Background(), "req-1", "inst-1",
		&model.Slot{Id: "slot-1"}, &model.Meta{Key: "fn-a"})
	require.NoError(t, err)
	require.Equal(t, "inst-1", inst.Id)
	require.EqualValues(t, 42, inst.InitDurationMs)
}

func TestInitNonOkStatusIsError(t *testing.T) {
	fake := &fakePlatform{initStatus: pb.Status_InvalidArgument}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	_, err := c.Init(context.Background(), "req-1", "inst-1",
		&model.Slot{Id: "slot-1"}, &model.Meta{Key: "fn-a"})
	require.Error(t, err)
}

func TestDestroySlotError(t *testing.T) {
	fake := &fakePlatform{destroyErr: true}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	err := c.DestroySlot(context.Background(), "req-1", "slot-1", "gc")
	require.Error(t, err)
}

func TestDestroySlotSuccess(t *testing.T) {
	fake := &fakePlatform{}
	c, cleanup := dialFake(t, fake)
	defer cleanup()

	err := c.DestroySlot(context.Background(), "req-1", "slot-1", "caller requested")
	require.NoError(t, err)
}
