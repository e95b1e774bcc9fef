package assumptions

import (
	"context"
	"net/url"

	"github.com/solarbi/savvy-planner/internal/storage"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/pkg/log"
)

const (
	objectPrefix = "assumptions/"
	downloadPath = "/assumptionmodelview/download/"
)

type Result struct {
	Values       int
	DownloadLink string
}

// ObjectKey is where the summary workbook of an assumption is stored.
func ObjectKey(name string) string {
	return objectPrefix + name + ".xlsx"
}

func DownloadLink(name string) string {
	return downloadPath + url.PathEscape(name)
}

type Processor struct {
	store   store.Store
	objects storage.ObjectStore
}

func NewProcessor(s store.Store, objects storage.ObjectStore) *Processor {
	return &Processor{store: s, objects: objects}
}

// Process parses the workbook at path, replaces the stored values of name and
// publishes the summary workbook. The values and the object are written
// together: a failed upload of the object rolls the values back.
func (p *Processor) Process(ctx context.Context, path, name string) (*Result, error) {
	tracer := log.NewDebugLogger("assumption_processor").
		WithContext(ctx).
		Operation("process").
		WithString("name", name).
		WithString("path", path).
		Build()

	values, err := ParseFile(path)
	if err != nil {
		tracer.Error(err).WithString("step", "parse").Log()
		return nil, err
	}
	tracer.Step("parsed").WithInt("values", len(values)).Log()

	summary, err := WriteSummary(values)
	if err != nil {
		tracer.Error(err).WithString("step", "summary").Log()
		return nil, err
	}

	ctx, err = p.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.store.AssumptionValue().Replace(ctx, name, values); err != nil {
		_, _ = store.Rollback(ctx)
		tracer.Error(err).WithString("step", "store_values").Log()
		return nil, err
	}

	if err := p.objects.Put(ctx, ObjectKey(name), summary, int64(summary.Len())); err != nil {
		_, _ = store.Rollback(ctx)
		tracer.Error(err).WithString("step", "put_object").Log()
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	tracer.Success().WithInt("values", len(values)).Log()

	return &Result{Values: len(values), DownloadLink: DownloadLink(name)}, nil
}
