package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/solarbi/savvy-planner/internal/api_server"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process queued assumption uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		objects, err := newObjectStore(ctx, cfg)
		if err != nil {
			return err
		}

		zap.S().Info("Starting assumption worker")
		return apiserver.NewWorkerServer(cfg, s, objects).Run(ctx)
	},
}
