package main

import (
	"context"
	"net"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/pkg/log"
	"github.com/solarbi/savvy-planner/pkg/migrations"
)

var rootCmd = &cobra.Command{
	Use:          "savvy-api",
	Short:        "Savvy assumption planner api",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(workerCmd)
}

// setup loads the configuration, installs the logger and opens the store.
// The returned func releases everything setup acquired.
func setup() (*config.Config, store.Store, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, err
	}

	undoLog := log.Setup(cfg.Service.LogLevel)
	zap.S().Infof("Using config: %s", cfg)

	zap.S().Info("Initializing data store")
	db, err := store.InitDB(cfg)
	if err != nil {
		undoLog()
		return nil, nil, nil, err
	}
	s := store.NewStore(db)

	// an in-memory sqlite database is empty until migrated
	if cfg.Database.Type == config.DbTypeSqlite {
		if err := migrations.MigrateStore(db, cfg.Database.Type, cfg.Service.MigrationFolder); err != nil {
			_ = s.Close()
			undoLog()
			return nil, nil, nil, err
		}
	}

	return cfg, s, func() {
		_ = s.Close()
		undoLog()
	}, nil
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	objects, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	zap.S().Infof("Storing outputs in %s", objects.Type())
	return objects, nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
