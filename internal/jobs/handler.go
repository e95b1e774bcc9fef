package jobs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
	"github.com/solarbi/savvy-planner/pkg/log"
	"github.com/solarbi/savvy-planner/pkg/metrics"
)

const statusUpdateTimeout = 30 * time.Second

type Processor interface {
	Process(ctx context.Context, path, name string) (*assumptions.Result, error)
}

// Handler runs one assumption job. It is shared by the river worker and the
// in-process queue.
type Handler struct {
	store     store.Store
	processor Processor
}

func NewHandler(s store.Store, processor Processor) *Handler {
	return &Handler{store: s, processor: processor}
}

// Handle processes the uploaded workbook and records the terminal status.
// Processing errors end up in status_detail and are not returned; only a
// failing status update is.
func (h *Handler) Handle(ctx context.Context, args AssumptionArgs) error {
	start := time.Now()
	tracer := log.NewDebugLogger("assumption_worker").
		WithContext(ctx).
		Operation("process_assumption").
		WithString("name", args.Name).
		WithString("path", args.Path).
		Build()

	defer removeUpload(args.Path)

	tracer.Step("job_started").Log()

	result, procErr := h.process(ctx, args)

	// the job context may be done already (timeout), the status must still land
	updateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusUpdateTimeout)
	defer cancel()

	status := model.AssumptionStatusSuccess
	var err error
	if procErr != nil {
		status = model.AssumptionStatusError
		detail := procErr.Error()
		tracer.Step("processing_failed").WithString("detail", detail).Log()
		_, err = h.store.Assumption().UpdateStatus(updateCtx, args.Name, status, &detail, nil)
	} else {
		_, err = h.store.Assumption().UpdateStatus(updateCtx, args.Name, status, nil, &result.DownloadLink)
	}

	if errors.Is(err, store.ErrRecordNotFound) {
		tracer.Step("assumption_deleted").Log()
		return nil
	}
	if err != nil {
		tracer.Error(err).WithString("step", "update_status").Log()
		return fmt.Errorf("failed to update assumption %q: %w", args.Name, err)
	}

	metrics.IncreaseAssumptionJobsTotalMetric(string(status), time.Since(start).Seconds())
	tracer.Success().WithString("status", string(status)).Log()

	return nil
}

func (h *Handler) process(ctx context.Context, args AssumptionArgs) (result *assumptions.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("processing panicked: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h.processor.Process(ctx, args.Path, args.Name)
}

// Fail marks the job as failed without processing it, for jobs that could
// not be handed to a worker.
func (h *Handler) Fail(ctx context.Context, args AssumptionArgs, cause error) {
	defer removeUpload(args.Path)

	detail := cause.Error()
	if _, err := h.store.Assumption().UpdateStatus(ctx, args.Name, model.AssumptionStatusError, &detail, nil); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		zap.S().Named("assumption_worker").Errorw("failed to mark assumption as failed", "name", args.Name, "error", err)
	}
}

func removeUpload(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.S().Named("assumption_worker").Warnw("failed to remove uploaded file", "path", path, "error", err)
	}
}
