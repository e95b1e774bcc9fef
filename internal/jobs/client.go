package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/config"
	"github.com/solarbi/savvy-planner/internal/store"
)

// InsertClient enqueues jobs through the database/sql pool used by gorm, so
// an insert can join the transaction of the upload.
type InsertClient struct {
	client *river.Client[*sql.Tx]
}

var _ TaskQueue = (*InsertClient)(nil)

func NewInsertClient(db *sql.DB) (*InsertClient, error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create river insert client: %w", err)
	}
	return &InsertClient{client: client}, nil
}

func (c *InsertClient) EnqueueAssumption(ctx context.Context, path, name string) error {
	args := AssumptionArgs{Path: path, Name: name}

	var (
		result *rivertype.JobInsertResult
		err    error
	)
	if tx, ok := store.SqlTxFromContext(ctx); ok {
		result, err = c.client.InsertTx(ctx, tx, args, nil)
	} else {
		result, err = c.client.Insert(ctx, args, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue assumption %q: %w", name, err)
	}

	zap.S().Named("task_queue").Debugw("assumption job enqueued", "job_id", result.Job.ID, "name", name)
	return nil
}

// Client runs the assumption workers.
type Client struct {
	*river.Client[pgx.Tx]
}

func NewClient(pool *pgxpool.Pool, handler *Handler, maxWorkers int) (*Client, error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewAssumptionWorker(handler))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			DefaultQueue: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		ErrorHandler: &errorHandler{handler: handler},

		FetchCooldown:     50 * time.Millisecond,
		FetchPollInterval: 100 * time.Millisecond,

		CancelledJobRetentionPeriod: 24 * time.Hour,
		CompletedJobRetentionPeriod: 24 * time.Hour,
		DiscardedJobRetentionPeriod: 7 * 24 * time.Hour,
	})
	if err != nil {
		return nil, err
	}

	return &Client{Client: riverClient}, nil
}

// NewPool opens the pgx pool river listens on.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s port=%s dbname=%s",
		cfg.Database.Hostname,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	// job processing plus LISTEN
	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	return pool, nil
}

// errorHandler catches jobs river gave up on before the handler could record
// a terminal status.
type errorHandler struct {
	handler *Handler
}

func (e *errorHandler) HandleError(ctx context.Context, job *rivertype.JobRow, err error) *river.ErrorHandlerResult {
	zap.S().Named("task_queue").Errorw("assumption job failed", "job_id", job.ID, "attempt", job.Attempt, "error", err)
	return nil
}

func (e *errorHandler) HandlePanic(ctx context.Context, job *rivertype.JobRow, panicVal any, trace string) *river.ErrorHandlerResult {
	zap.S().Named("task_queue").Errorw("assumption job panicked", "job_id", job.ID, "panic", panicVal, "trace", trace)

	var args AssumptionArgs
	if err := decodeArgs(job, &args); err != nil {
		zap.S().Named("task_queue").Errorw("failed to decode job args", "job_id", job.ID, "error", err)
		return nil
	}
	e.handler.Fail(context.WithoutCancel(ctx), args, fmt.Errorf("processing panicked: %v", panicVal))
	return nil
}

func decodeArgs(job *rivertype.JobRow, args *AssumptionArgs) error {
	return json.Unmarshal(job.EncodedArgs, args)
}
