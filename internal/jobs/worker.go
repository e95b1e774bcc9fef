package jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"
)

type AssumptionWorker struct {
	river.WorkerDefaults[AssumptionArgs]
	handler *Handler
}

func NewAssumptionWorker(handler *Handler) *AssumptionWorker {
	return &AssumptionWorker{handler: handler}
}

func (w *AssumptionWorker) Timeout(job *river.Job[AssumptionArgs]) time.Duration {
	return JobTimeout
}

func (w *AssumptionWorker) Work(ctx context.Context, job *river.Job[AssumptionArgs]) error {
	return w.handler.Handle(ctx, job.Args)
}
