package apiserver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
)

const workerStopTimeout = 30 * time.Second

func newJobHandler(s store.Store, objects storage.ObjectStore) *jobs.Handler {
	return jobs.NewHandler(s, assumptions.NewProcessor(s, objects))
}

// NewTaskQueue returns the queue uploads are enqueued on. With sqlite the
// jobs run in-process and the returned func must be run to drain them; with
// postgres the func is nil and a WorkerServer drains the river queue.
func NewTaskQueue(cfg *config.Config, s store.Store, objects storage.ObjectStore) (jobs.TaskQueue, func(context.Context) error, error) {
	if cfg.Database.Type == config.DbTypeSqlite {
		zap.S().Named("task_queue").Infow("using in-process queue", "workers", cfg.Service.Queue.Workers, "size", cfg.Service.Queue.Size)
		queue := jobs.NewLocalQueue(newJobHandler(s, objects), cfg.Service.Queue.Workers, cfg.Service.Queue.Size)
		return queue, queue.Run, nil
	}

	sqlDB, err := s.SqlDB()
	if err != nil {
		return nil, nil, err
	}
	client, err := jobs.NewInsertClient(sqlDB)
	if err != nil {
		return nil, nil, err
	}
	zap.S().Named("task_queue").Info("using river queue")
	return client, nil, nil
}

// WorkerServer processes the river assumption queue.
type WorkerServer struct {
	cfg     *config.Config
	store   store.Store
	objects storage.ObjectStore
}

func NewWorkerServer(cfg *config.Config, s store.Store, objects storage.ObjectStore) *WorkerServer {
	return &WorkerServer{cfg: cfg, store: s, objects: objects}
}

func (w *WorkerServer) Run(ctx context.Context) error {
	if w.cfg.Database.Type != config.DbTypePostgres {
		return fmt.Errorf("river workers need postgres, database type is %q", w.cfg.Database.Type)
	}

	pool, err := jobs.NewPool(ctx, w.cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	client, err := jobs.NewClient(pool, newJobHandler(w.store, w.objects), w.cfg.Service.Queue.Workers)
	if err != nil {
		return fmt.Errorf("failed to create river client: %w", err)
	}

	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start river: %w", err)
	}
	zap.S().Named("worker").Infow("assumption worker started", "queue", jobs.DefaultQueue, "workers", w.cfg.Service.Queue.Workers)

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), workerStopTimeout)
	defer cancel()
	if err := client.Stop(stopCtx); err != nil {
		zap.S().Named("worker").Warnw("failed to stop river client", "error", err)
	}
	zap.S().Named("worker").Info("assumption worker stopped")
	return nil
}
