package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	bcmapiv1alpha1 "github.com/uptime-industries/bcm2835-hal/api/bcmapi/v1alpha1"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/log"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

var requestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bcmd",
	Name:      "requests_total",
	Help:      "bcmd gRPC requests by method and status code",
}, []string{"method", "code"})

// agentGrpcService implements the PeripheralServiceServer on top of an Agent
type agentGrpcService struct {
	bcmapiv1alpha1.UnimplementedPeripheralServiceServer

	Agent *Agent
}

// NewGrpcServiceFor creates a new gRPC service for a given agent
func NewGrpcServiceFor(agent *Agent) *agentGrpcService {
	return &agentGrpcService{
		Agent: agent,
	}
}

// NewGrpcServer returns a gRPC server exposing agent, with request metrics and logging
func NewGrpcServer(ctx context.Context, agent *Agent) *grpc.Server {
	logger := log.FromContext(ctx)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryMetricsInterceptor(logger)),
		grpc.ChainStreamInterceptor(streamMetricsInterceptor(logger)),
	)
	bcmapiv1alpha1.RegisterPeripheralServiceServer(server, NewGrpcServiceFor(agent))
	return server
}

func unaryMetricsInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(log.IntoContext(ctx, logger), req)
		observe(logger, info.FullMethod, err)
		return resp, err
	}
}

func streamMetricsInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		observe(logger, info.FullMethod, err)
		return err
	}
}

func observe(logger *zap.Logger, method string, err error) {
	code := status.Code(err)
	requestCounter.WithLabelValues(method, code.String()).Inc()
	if err != nil && code != codes.Canceled {
		logger.Debug("Request failed", zap.String("method", method), zap.Stringer("code", code), zap.Error(err))
	}
}

// toStatus maps HAL errors onto gRPC status codes
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcm2835.ErrInvalidPin),
		errors.Is(err, bcm2835.ErrInvalidFunction),
		errors.Is(err, bcm2835.ErrInvalidBitOrder),
		errors.Is(err, bcm2835.ErrInvalidDataMode),
		errors.Is(err, bcm2835.ErrInvalidChipSelect):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, bcm2835.ErrNoFullAccess),
		errors.Is(err, bcm2835.ErrSPINotActive):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, bcm2835.ErrTransferTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, bcm2835.ErrNotMapped):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toPin(pin uint32) (bcm2835.Pin, error) {
	if pin >= bcm2835.PinCount {
		return 0, status.Errorf(codes.InvalidArgument, "pin %d out of range, supported: [0, %d]", pin, bcm2835.PinCount-1)
	}
	return bcm2835.Pin(pin), nil
}

// GpioFunctionSelect selects the function of a pin
func (service *agentGrpcService) GpioFunctionSelect(
	ctx context.Context,
	req *bcmapiv1alpha1.GpioFunctionSelectRequest,
) (*emptypb.Empty, error) {
	pin, err := toPin(req.Pin)
	if err != nil {
		return nil, err
	}
	fn, err := bcm2835.ParseFunction(req.Function)
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, toStatus(service.Agent.FunctionSelect(ctx, pin, fn))
}

// GpioWrite drives an output pin
func (service *agentGrpcService) GpioWrite(ctx context.Context, req *bcmapiv1alpha1.GpioWriteRequest) (*emptypb.Empty, error) {
	pin, err := toPin(req.Pin)
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, toStatus(service.Agent.Write(ctx, pin, req.High))
}

// GpioRead samples a pin
func (service *agentGrpcService) GpioRead(ctx context.Context, req *bcmapiv1alpha1.GpioReadRequest) (*bcmapiv1alpha1.GpioReadResponse, error) {
	pin, err := toPin(req.Pin)
	if err != nil {
		return nil, err
	}
	high, err := service.Agent.Read(ctx, pin)
	if err != nil {
		return nil, toStatus(err)
	}
	return &bcmapiv1alpha1.GpioReadResponse{Pin: req.Pin, High: high}, nil
}

func (service *agentGrpcService) SpiBegin(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, toStatus(service.Agent.SpiBegin(ctx))
}

func (service *agentGrpcService) SpiEnd(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, toStatus(service.Agent.SpiEnd(ctx))
}

// SpiConfigure converts the wire settings and applies them
func (service *agentGrpcService) SpiConfigure(ctx context.Context, req *bcmapiv1alpha1.SpiConfigureRequest) (*emptypb.Empty, error) {
	var settings SpiSettings

	if req.BitOrder != nil {
		order, err := bcm2835.ParseBitOrder(*req.BitOrder)
		if err != nil {
			return nil, toStatus(err)
		}
		settings.BitOrder = &order
	}
	if req.DataMode != nil {
		if *req.DataMode > uint32(bcm2835.Mode3) {
			return nil, status.Errorf(codes.InvalidArgument, "data mode %d out of range, supported: [0, 3]", *req.DataMode)
		}
		mode := bcm2835.DataMode(*req.DataMode)
		settings.DataMode = &mode
	}
	if req.ClockDivider != nil {
		if *req.ClockDivider > math.MaxUint16 {
			return nil, status.Errorf(codes.InvalidArgument, "clock divider %d out of range, supported: [0, 65535]", *req.ClockDivider)
		}
		divider := uint16(*req.ClockDivider)
		settings.ClockDivider = &divider
	}
	if req.ChipSelect != nil {
		if *req.ChipSelect > uint32(bcm2835.CSNone) {
			return nil, status.Errorf(codes.InvalidArgument, "chip select %d out of range, supported: [0, 3]", *req.ChipSelect)
		}
		cs := bcm2835.ChipSelect(*req.ChipSelect)
		settings.ChipSelect = &cs
	}
	if req.Timeout != nil {
		if err := req.Timeout.CheckValid(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid transfer timeout: %v", err)
		}
		timeout := req.Timeout.AsDuration()
		if timeout < 0 {
			return nil, status.Errorf(codes.InvalidArgument, "negative transfer timeout %s", timeout)
		}
		settings.Timeout = &timeout
	}

	return &emptypb.Empty{}, toStatus(service.Agent.SpiConfigure(ctx, settings))
}

// SpiTransfer exchanges a buffer on SPI0
func (service *agentGrpcService) SpiTransfer(ctx context.Context, req *bcmapiv1alpha1.SpiTransferRequest) (*bcmapiv1alpha1.SpiTransferResponse, error) {
	data, err := service.Agent.SpiTransfer(ctx, req.Data)
	if err != nil {
		return nil, toStatus(err)
	}
	return &bcmapiv1alpha1.SpiTransferResponse{Data: data}, nil
}

// GetStatus aggregates the status of the session
func (service *agentGrpcService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*bcmapiv1alpha1.StatusResponse, error) {
	st := service.Agent.Status(ctx)

	resp := &bcmapiv1alpha1.StatusResponse{
		Board:       st.Range.Board.String(),
		Base:        st.Range.Base,
		Size:        st.Range.Size,
		Mapped:      st.Mapped,
		FullAccess:  st.FullAccess,
		SpiActive:   st.SpiActive,
		BitOrder:    st.BitOrder.String(),
		WatchedPins: make([]uint32, 0, len(st.WatchedPins)),
		PinLevels:   make(map[uint32]bool, len(st.Levels)),
	}
	for _, pin := range st.WatchedPins {
		resp.WatchedPins = append(resp.WatchedPins, uint32(pin))
	}
	for pin, high := range st.Levels {
		resp.PinLevels[uint32(pin)] = high
	}
	return resp, nil
}

// WatchPins streams edges until the client cancels
func (service *agentGrpcService) WatchPins(req *bcmapiv1alpha1.WatchPinsRequest, stream bcmapiv1alpha1.PeripheralService_WatchPinsServer) error {
	watched := make(map[int]struct{})
	for _, pin := range service.Agent.WatchedPins() {
		watched[pin] = struct{}{}
	}
	pins := make([]int, 0, len(req.Pins))
	for _, pin := range req.Pins {
		if _, ok := watched[int(pin)]; !ok {
			return status.Errorf(codes.InvalidArgument, "pin %d is not watched, watched: %v", pin, service.Agent.WatchedPins())
		}
		pins = append(pins, int(pin))
	}

	sub := service.Agent.Subscribe(pins)
	defer sub.Unsubscribe()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case evt, ok := <-sub.C():
			if !ok {
				return nil
			}
			if err := stream.Send(&bcmapiv1alpha1.PinEvent{
				Pin:       uint32(evt.Pin),
				Rising:    evt.Rising,
				Timestamp: durationpb.New(evt.Timestamp),
				Seqno:     evt.Seqno,
			}); err != nil {
				return err
			}
		}
	}
}

// Listen opens the listener for addr, unix:///path/to.sock or tcp://host:port.
// A stale unix socket is removed first.
func Listen(addr string) (net.Listener, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}

	switch u.Scheme {
	case "unix":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale socket %s: %w", path, err)
		}
		return net.Listen("unix", path)
	case "tcp":
		return net.Listen("tcp", u.Host)
	default:
		return nil, fmt.Errorf("invalid listen address %q, supported schemes: [unix, tcp]", addr)
	}
}
