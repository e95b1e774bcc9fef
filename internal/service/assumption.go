package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/assumptions"
	"github.com/solarbi/savvy-planner/internal/audit"
	"github.com/solarbi/savvy-planner/internal/auth"
	"github.com/solarbi/savvy-planner/internal/jobs"
	"github.com/solarbi/savvy-planner/internal/service/mappers"
	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
	"github.com/solarbi/savvy-planner/pkg/log"
	"github.com/solarbi/savvy-planner/pkg/metrics"
)

const (
	UploadSuccessMessage = "Upload success"
	uploadFailedPrefix   = "Upload failed:"
)

type UploadResult struct {
	Name    string
	Path    string
	Failed  bool
	Message string
	Elapsed time.Duration
}

type AssumptionService struct {
	store     store.Store
	queue     jobs.TaskQueue
	objects   storage.ObjectStore
	recorder  *audit.Recorder
	folder    string
	chunkSize int
	logger    *log.StructuredLogger
}

func NewAssumptionService(s store.Store, queue jobs.TaskQueue, objects storage.ObjectStore, recorder *audit.Recorder, uploadFolder string, chunkSize int) *AssumptionService {
	if chunkSize <= 0 {
		chunkSize = 1 << 20
	}
	return &AssumptionService{
		store:     s,
		queue:     queue,
		objects:   objects,
		recorder:  recorder,
		folder:    uploadFolder,
		chunkSize: chunkSize,
		logger:    log.NewDebugLogger("assumption_service"),
	}
}

// Upload stores the workbook in the upload folder, queues it for processing
// and resets the assumption to Processing. Failures are reported in the
// result: the temporary file is removed and nothing is committed.
func (s *AssumptionService) Upload(ctx context.Context, form mappers.UploadForm) *UploadResult {
	start := time.Now()
	tracer := s.logger.WithContext(ctx).
		Operation("upload").
		WithString("name", form.Name).
		WithString("filename", form.Filename).
		Build()

	var path string
	err := s.recorder.Record(ctx, audit.ActionUploadAssumption, func(e *audit.Entry) error {
		e.SetObject(audit.ObjectTypeAssumption, form.Name)

		p, err := s.upload(ctx, form)
		if err != nil {
			e.SetDetail(uploadFailedPrefix + err.Error())
			return err
		}
		path = p
		return nil
	})

	result := &UploadResult{Name: form.Name, Path: path, Elapsed: time.Since(start)}
	if err != nil {
		tracer.Error(err).Log()
		metrics.IncreaseUploadsTotalMetric("failed")
		result.Failed = true
		result.Message = uploadFailedPrefix + err.Error()
		return result
	}

	metrics.IncreaseUploadsTotalMetric("successful")
	metrics.UniqueUploadersPerWeek.Add(auth.UsernameFromContext(ctx))
	tracer.Success().WithString("path", path).Log()

	result.Message = UploadSuccessMessage
	return result
}

func (s *AssumptionService) upload(ctx context.Context, form mappers.UploadForm) (string, error) {
	if err := os.MkdirAll(s.folder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(form.Filename))
	f, err := os.CreateTemp(s.folder, "assumption-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	path := f.Name()

	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			zap.S().Named("assumption_service").Warnw("failed to remove upload file", "path", path, "error", err)
		}
	}

	if _, err := copyChunked(f, form.File, s.chunkSize); err != nil {
		f.Close()
		cleanup()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		cleanup()
		return "", err
	}

	if err := s.queue.EnqueueAssumption(ctx, path, form.Name); err != nil {
		_, _ = store.Rollback(ctx)
		cleanup()
		return "", err
	}

	if _, err := s.store.Assumption().Upsert(ctx, model.Assumption{Name: form.Name, Status: model.AssumptionStatusProcessing}); err != nil {
		_, _ = store.Rollback(ctx)
		cleanup()
		return "", err
	}

	if _, err := store.Commit(ctx); err != nil {
		cleanup()
		return "", err
	}

	return path, nil
}

func copyChunked(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	buf := make([]byte, chunkSize)
	var written int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return written, werr
			}
			written += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

func (s *AssumptionService) List(ctx context.Context, params ListParams) (model.AssumptionList, int64, error) {
	opts, err := params.queryOptions(AssumptionOrdering)
	if err != nil {
		return nil, 0, err
	}
	return s.store.Assumption().List(ctx, params.assumptionFilter(), opts)
}

func (s *AssumptionService) Get(ctx context.Context, name string) (*model.Assumption, error) {
	a, err := s.store.Assumption().Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrAssumptionNotFound(name)
		}
		return nil, err
	}
	return a, nil
}

// Update edits the status columns of an assumption by hand.
func (s *AssumptionService) Update(ctx context.Context, name string, form mappers.AssumptionUpdateForm) (*model.Assumption, error) {
	tracer := s.logger.WithContext(ctx).Operation("update").WithString("name", name).Build()

	current, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	status := current.Status
	if form.Status != nil {
		status = model.AssumptionStatus(*form.Status)
		if !status.Valid() {
			return nil, NewErrInvalidStatus(*form.Status)
		}
	}

	detail, link := current.StatusDetail, current.DownloadLink
	if form.StatusDetail != nil {
		detail = form.StatusDetail
	}
	if form.DownloadLink != nil {
		link = form.DownloadLink
	}

	updated, err := s.store.Assumption().UpdateStatus(ctx, name, status, detail, link)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrAssumptionNotFound(name)
		}
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().Log()
	return updated, nil
}

// Delete removes the assumption, its values and its output workbook.
func (s *AssumptionService) Delete(ctx context.Context, name string) error {
	return s.recorder.Record(ctx, audit.ActionDeleteAssumption, func(e *audit.Entry) error {
		e.SetObject(audit.ObjectTypeAssumption, name)

		txCtx, err := s.store.NewTransactionContext(ctx)
		if err != nil {
			return err
		}
		if err := s.store.Assumption().Delete(txCtx, name); err != nil {
			_, _ = store.Rollback(txCtx)
			if errors.Is(err, store.ErrRecordNotFound) {
				return NewErrAssumptionNotFound(name)
			}
			return err
		}
		if _, err := store.Commit(txCtx); err != nil {
			return err
		}

		if err := s.objects.Delete(ctx, assumptions.ObjectKey(name)); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			zap.S().Named("assumption_service").Warnw("failed to delete output", "name", name, "error", err)
		}
		return nil
	})
}

// Download opens the summary workbook of a successfully processed assumption.
func (s *AssumptionService) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	a, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if a.Status != model.AssumptionStatusSuccess {
		return nil, NewErrOutputNotAvailable(name, a.Status)
	}

	rc, err := s.objects.Get(ctx, assumptions.ObjectKey(name))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, NewErrOutputNotFound(name)
		}
		return nil, err
	}
	return rc, nil
}
