package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	bcmapiv1alpha1 "github.com/uptime-industries/bcm2835-hal/api/bcmapi/v1alpha1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type grpcClientContextKey int

const (
	defaultGrpcClientContextKey grpcClientContextKey = 0
)

var (
	grpcAddr string
	timeout  time.Duration
)

func init() {
	rootCmd.PersistentFlags().
		StringVar(&grpcAddr, "addr", "unix:///tmp/bcmd.sock", "address of the bcmd gRPC server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "timeout for gRPC requests")
}

func clientIntoContext(ctx context.Context, client bcmapiv1alpha1.PeripheralServiceClient) context.Context {
	return context.WithValue(ctx, defaultGrpcClientContextKey, client)
}

func clientFromContext(ctx context.Context) bcmapiv1alpha1.PeripheralServiceClient {
	client, ok := ctx.Value(defaultGrpcClientContextKey).(bcmapiv1alpha1.PeripheralServiceClient)
	if !ok {
		panic("grpc client not found in context")
	}
	return client
}

var rootCmd = &cobra.Command{
	Use:          "bcmctl",
	Short:        "bcmctl drives the GPIO and SPI0 peripherals exposed by bcmd",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		origCtx := cmd.Context()

		ctx, cancelCtx := context.WithTimeout(origCtx, timeout)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			select {
			case <-ctx.Done():
			case <-sigs:
				cancelCtx()
			}
		}()

		conn, err := grpc.Dial(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			cancelCtx()
			return fmt.Errorf("failed to dial grpc server: %w", err)
		}
		client := bcmapiv1alpha1.NewPeripheralServiceClient(conn)

		cmd.SetContext(clientIntoContext(ctx, client))
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
