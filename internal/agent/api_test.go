package agent_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bcmapiv1alpha1 "github.com/uptime-industries/bcm2835-hal/api/bcmapi/v1alpha1"
	"github.com/uptime-industries/bcm2835-hal/internal/agent"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

// startServer serves a over an in-memory listener and returns a connected client
func startServer(t *testing.T, a *agent.Agent) bcmapiv1alpha1.PeripheralServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := agent.NewGrpcServer(context.Background(), a)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return bcmapiv1alpha1.NewPeripheralServiceClient(conn)
}

func ptr[T any](v T) *T {
	return &v
}

func TestGrpcGPIO(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, blocks := newTestAgent(t, agent.Config{}, nil)
	client := startServer(t, a)

	_, err := client.GpioFunctionSelect(ctx, &bcmapiv1alpha1.GpioFunctionSelectRequest{Pin: 17, Function: "out"})
	require.NoError(t, err)
	assert.Equal(t, uint32(0b001<<21), blocks.GPIO.Read(0x04))

	_, err = client.GpioWrite(ctx, &bcmapiv1alpha1.GpioWriteRequest{Pin: 17, High: true})
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<17), blocks.GPIO.Read(0x1c))

	_, err = client.GpioWrite(ctx, &bcmapiv1alpha1.GpioWriteRequest{Pin: 17})
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<17), blocks.GPIO.Read(0x28))

	blocks.GPIO.Write(0x34, 1<<17)
	resp, err := client.GpioRead(ctx, &bcmapiv1alpha1.GpioReadRequest{Pin: 17})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&bcmapiv1alpha1.GpioReadResponse{Pin: 17, High: true}, resp), "got %v", resp)
}

func TestGrpcErrorCodes(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, _ := newTestAgent(t, agent.Config{}, nil)
	client := startServer(t, a)

	_, err := client.GpioWrite(ctx, &bcmapiv1alpha1.GpioWriteRequest{Pin: 54})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GpioFunctionSelect(ctx, &bcmapiv1alpha1.GpioFunctionSelectRequest{Pin: 4, Function: "alt9"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.SpiTransfer(ctx, &bcmapiv1alpha1.SpiTransferRequest{Data: []byte{0x00}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.SpiConfigure(ctx, &bcmapiv1alpha1.SpiConfigureRequest{ClockDivider: ptr(uint32(1 << 16))})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.SpiConfigure(ctx, &bcmapiv1alpha1.SpiConfigureRequest{DataMode: ptr(uint32(1))})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.SpiConfigure(ctx, &bcmapiv1alpha1.SpiConfigureRequest{Timeout: durationpb.New(-time.Second)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	require.NoError(t, a.Close())
	_, err = client.GpioRead(ctx, &bcmapiv1alpha1.GpioReadRequest{Pin: 4})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestGrpcGPIOOnlySession(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess := bcm2835.FromBlocks(bcm2835.Blocks{GPIO: make(bcm2835.RegisterBlock, 0x1000/4)}, bcm2835.Opts{})
	a := agent.New(agent.Config{}, sess, nil)
	t.Cleanup(func() { _ = a.Close() })
	client := startServer(t, a)

	_, err := client.SpiBegin(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	st, err := client.GetStatus(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, st.Mapped)
	assert.False(t, st.FullAccess)
	assert.Equal(t, "rpi1", st.Board)
}

func TestGrpcSPI(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, blocks := newTestAgent(t, agent.Config{}, nil)
	client := startServer(t, a)

	_, err := client.SpiBegin(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	blocks.SPI0.Write(0x00, spiReady)

	_, err = client.SpiConfigure(ctx, &bcmapiv1alpha1.SpiConfigureRequest{
		BitOrder:     ptr("lsb-first"),
		DataMode:     ptr(uint32(2)),
		ClockDivider: ptr(uint32(64)),
		Timeout:      durationpb.New(50 * time.Millisecond),
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(64), blocks.SPI0.Read(0x08))
	assert.Equal(t, uint32(spiReady|1<<3), blocks.SPI0.Read(0x00))

	resp, err := client.SpiTransfer(ctx, &bcmapiv1alpha1.SpiTransferRequest{Data: []byte{0x01, 0x02}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, resp.Data)
	assert.Equal(t, uint32(0x40), blocks.SPI0.Read(0x04))

	st, err := client.GetStatus(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, st.SpiActive)
	assert.Equal(t, "lsb-first", st.BitOrder)

	_, err = client.SpiEnd(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	_, err = client.SpiEnd(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGrpcWatchPins(t *testing.T) {
	t.Parallel()

	stub := newWatcherStub()
	stub.watcher.On("Close").Return(nil)
	a, _ := newTestAgent(t, agent.Config{WatchPins: []int{4, 17}}, stub.open)

	runCtx, stopAgent := context.WithCancel(context.Background())
	defer stopAgent()
	go func() { _ = a.Run(runCtx) }()
	<-stub.opened

	client := startServer(t, a)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	invalid, err := client.WatchPins(ctx, &bcmapiv1alpha1.WatchPinsRequest{Pins: []uint32{5}})
	if err == nil {
		// server stream errors surface on the first Recv
		_, err = invalid.Recv()
	}
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	stream, err := client.WatchPins(ctx, &bcmapiv1alpha1.WatchPinsRequest{Pins: []uint32{17}})
	require.NoError(t, err)

	// the server subscribes asynchronously, keep edges coming until the first one arrives
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			stub.handler(edgewatch.Event{Pin: 4, Rising: true})
			stub.handler(edgewatch.Event{Pin: 17, Rising: true, Timestamp: time.Second, Seqno: 1})
			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}()

	evt, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint32(17), evt.Pin)
	assert.True(t, evt.Rising)
	assert.Equal(t, time.Second, evt.Timestamp.AsDuration())
	assert.Equal(t, uint32(1), evt.Seqno)

	st, err := client.GetStatus(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 17}, st.WatchedPins)
	assert.Equal(t, map[uint32]bool{4: true, 17: true}, st.PinLevels)
}

func TestListen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bcmd.sock")
	lis, err := agent.Listen("unix://" + path)
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	// the path is reusable once the previous listener is gone
	lis, err = agent.Listen("unix://" + path)
	require.NoError(t, err)
	assert.Equal(t, "unix", lis.Addr().Network())
	require.NoError(t, lis.Close())

	stale := filepath.Join(t.TempDir(), "stale.sock")
	require.NoError(t, os.WriteFile(stale, nil, 0o600))
	lis, err = agent.Listen("unix://" + stale)
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	lis, err = agent.Listen("tcp://127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	_, err = agent.Listen("udp://127.0.0.1:0")
	assert.Error(t, err)
}
