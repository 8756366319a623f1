package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/uptime-industries/bcm2835-hal/internal/agent"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
	"github.com/uptime-industries/bcm2835-hal/pkg/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	debug      bool
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path of the config file (default /etc/bcmd/bcmd.yaml if present)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable development logging")
}

var rootCmd = &cobra.Command{
	Use:           "bcmd",
	Short:         "bcmd exposes the GPIO and SPI0 peripherals of a Raspberry Pi over gRPC",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg.Debug = cfg.Debug || debug
		return run(cmd.Context(), cfg)
	},
}

func run(parentCtx context.Context, cfg agent.Config) error {
	zapLogger := log.New("bcmd", cfg.Debug)
	defer func() { _ = zapLogger.Sync() }()
	_ = zap.ReplaceGlobals(zapLogger.With(zap.String("scope", "global")))

	ctx, cancelCtx := context.WithCancelCause(log.IntoContext(parentCtx, zapLogger))
	defer cancelCtx(context.Canceled)

	sess, err := bcm2835.Open(ctx, cfg.Hal)
	if err != nil {
		return fmt.Errorf("failed to map peripherals: %w", err)
	}
	bcmAgent := agent.New(cfg, sess, edgewatch.Open)

	lis, err := agent.Listen(cfg.Listen)
	if err != nil {
		_ = bcmAgent.Close()
		return err
	}

	// setup stop signal handlers
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-ctx.Done():
		case sig := <-sigs:
			cancelCtx(fmt.Errorf("signal %s received", sig))
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	// Run agent
	group.Go(func() error {
		err := bcmAgent.Run(groupCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.FromContext(ctx).Error("Failed to run agent", zap.Error(err))
			return err
		}
		return nil
	})

	// setup gRPC server
	grpcServer := agent.NewGrpcServer(ctx, bcmAgent)
	group.Go(func() error {
		log.FromContext(ctx).Info("Starting gRPC server", zap.String("addr", cfg.Listen))
		if err := grpcServer.Serve(lis); err != nil {
			log.FromContext(ctx).Error("Failed to serve gRPC", zap.Error(err))
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		// WatchPins streams only end with their clients, don't wait for them forever
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			grpcServer.Stop()
		}
		return nil
	})

	// setup prometheus endpoint
	if cfg.MetricsAddr != "" {
		promHandler := http.NewServeMux()
		promHandler.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: promHandler, ReadHeaderTimeout: 5 * time.Second}
		group.Go(func() error {
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.FromContext(ctx).Error("Failed to start prometheus server", zap.Error(err))
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.FromContext(ctx).Error("Failed to shutdown prometheus server", zap.Error(err))
			}
			return nil
		})
	}

	err = group.Wait()
	if cause := context.Cause(ctx); err == nil && cause != nil && !errors.Is(cause, context.Canceled) {
		log.FromContext(ctx).Info("Exiting", zap.NamedError("cause", cause))
	}
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
