package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apiserver "github.com/solarbi/savvy-planner/internal/api_server"
	"github.com/solarbi/savvy-planner/pkg/metrics"
)

var noWorker bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the savvy api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		objects, err := newObjectStore(ctx, cfg)
		if err != nil {
			return err
		}

		queue, runQueue, err := apiserver.NewTaskQueue(cfg, s, objects)
		if err != nil {
			return err
		}

		if err := metrics.RegisterStoreCollector(s); err != nil {
			zap.S().Warnw("failed to register store metrics", "error", err)
		}

		g, ctx := errgroup.WithContext(ctx)

		switch {
		case runQueue != nil:
			if noWorker {
				zap.S().Warn("--no-worker ignored: the in-process queue needs its workers")
			}
			g.Go(func() error { return runQueue(ctx) })
		case !noWorker:
			g.Go(func() error { return apiserver.NewWorkerServer(cfg, s, objects).Run(ctx) })
		}

		g.Go(func() error {
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				return err
			}
			return apiserver.New(cfg, s, listener, queue, objects).Run(ctx)
		})

		g.Go(func() error {
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				return err
			}
			return apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener).Run(ctx)
		})

		if err := g.Wait(); err != nil {
			zap.S().Errorw("Error running server", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&noWorker, "no-worker", false, "do not process assumption jobs in this process")
}
