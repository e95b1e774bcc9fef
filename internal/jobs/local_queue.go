package jobs

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solarbi/savvy-planner/internal/store"
)

// LocalQueue runs assumption jobs in-process on a fixed pool of goroutines.
// It is used when no postgres is available to back river.
type LocalQueue struct {
	handler *Handler
	workers int
	jobs    chan AssumptionArgs

	mu       sync.Mutex
	reserved int
	closed   bool
}

var _ TaskQueue = (*LocalQueue)(nil)

func NewLocalQueue(handler *Handler, workers, size int) *LocalQueue {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}
	return &LocalQueue{
		handler: handler,
		workers: workers,
		jobs:    make(chan AssumptionArgs, size),
	}
}

// EnqueueAssumption claims a slot for the job or fails with ErrQueueFull.
// Inside a transaction the job is held until commit and its slot is freed
// on rollback.
func (q *LocalQueue) EnqueueAssumption(ctx context.Context, path, name string) error {
	args := AssumptionArgs{Path: path, Name: name}

	if err := q.reserve(); err != nil {
		return err
	}

	if store.AfterCommit(ctx, func() {
		if err := q.push(args); err != nil {
			zap.S().Named("task_queue").Errorw("failed to hand over committed job", "name", name, "error", err)
			q.handler.Fail(context.Background(), args, err)
		}
	}) {
		store.AfterRollback(ctx, q.release)
		return nil
	}

	return q.push(args)
}

func (q *LocalQueue) reserve() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if len(q.jobs)+q.reserved >= cap(q.jobs) {
		return ErrQueueFull
	}
	q.reserved++
	return nil
}

func (q *LocalQueue) release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.reserved--
}

// push fills a slot claimed by reserve, so the send never blocks.
func (q *LocalQueue) push(args AssumptionArgs) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.reserved--
	if q.closed {
		return ErrQueueClosed
	}
	q.jobs <- args
	return nil
}

// Run blocks until ctx is done. Jobs still queued at that point are
// abandoned: their rows keep the Processing status.
func (q *LocalQueue) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < q.workers; i++ {
		g.Go(func() error {
			return q.work(gctx)
		})
	}

	err := g.Wait()

	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	zap.S().Named("task_queue").Infof("local queue stopped, %d jobs abandoned", len(q.jobs))
	return err
}

func (q *LocalQueue) work(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case args := <-q.jobs:
			jobCtx, cancel := context.WithTimeout(ctx, JobTimeout)
			if err := q.handler.Handle(jobCtx, args); err != nil {
				zap.S().Named("task_queue").Errorw("assumption job failed", "name", args.Name, "error", err)
			}
			cancel()
		}
	}
}
