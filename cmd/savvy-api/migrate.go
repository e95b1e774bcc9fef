package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/pkg/log"
	"github.com/solarbi/savvy-planner/pkg/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()
		defer zap.S().Info("Db migrated")

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Errorw("initializing data store", "error", err)
			return err
		}
		s := store.NewStore(db)
		defer s.Close()

		if err := migrations.MigrateStore(db, cfg.Database.Type, cfg.Service.MigrationFolder); err != nil {
			zap.S().Errorw("running migrations", "error", err)
			return err
		}

		if cfg.Database.Type != config.DbTypePostgres {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		pool, err := jobs.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		return migrations.MigrateRiver(ctx, pool)
	},
}
