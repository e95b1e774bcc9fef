package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/auth"
	"github.com/solarbi/savvy-planner/internal/store"
	"github.com/solarbi/savvy-planner/internal/store/model"
)

const (
	ActionUploadAssumption = "upload assumption"
	ActionDeleteAssumption = "delete assumption"
	ActionCreateSimulation = "create simulation"
	ActionUpdateSimulation = "update simulation"
	ActionDeleteSimulation = "delete simulation"

	ObjectTypeAssumption = "Assumption"
	ObjectTypeSimulation = "Simulation"
)

// Entry is filled by the audited operation.
type Entry struct {
	User             string
	Action           string
	ActionObject     string
	ActionObjectType string
	Dttm             time.Time
	Result           string
	Detail           *string
}

// SetObject names the object the action applies to.
func (e *Entry) SetObject(objectType, object string) {
	e.ActionObjectType = objectType
	e.ActionObject = object
}

func (e *Entry) SetDetail(detail string) {
	e.Detail = &detail
}

type Recorder struct {
	store store.Store
}

func NewRecorder(s store.Store) *Recorder {
	return &Recorder{store: s}
}

// Record runs fn and appends one log row for it, whatever fn returns. A
// failing fn marks the row Failed and, unless fn set one, stores the error as
// detail. fn's error is returned unchanged. The row is written once fn
// returns, so fn must have ended any transaction it opened.
func (r *Recorder) Record(ctx context.Context, action string, fn func(*Entry) error) error {
	entry := &Entry{
		User:   auth.UsernameFromContext(ctx),
		Action: action,
		Dttm:   time.Now(),
		Result: model.ActionResultSuccess,
	}

	err := fn(entry)
	if err != nil {
		entry.Result = model.ActionResultFailed
		if entry.Detail == nil {
			entry.SetDetail(err.Error())
		}
	}

	r.persist(ctx, entry)
	return err
}

func (r *Recorder) persist(ctx context.Context, entry *Entry) {
	ctx = store.WithoutTransaction(context.WithoutCancel(ctx))

	_, err := r.store.SimulationLog().Create(ctx, model.SimulationLog{
		User:             entry.User,
		Action:           entry.Action,
		ActionObject:     entry.ActionObject,
		ActionObjectType: entry.ActionObjectType,
		Dttm:             entry.Dttm,
		Result:           entry.Result,
		Detail:           entry.Detail,
	})
	if err != nil {
		zap.S().Named("audit").Errorw("failed to record action", "action", entry.Action, "object", entry.ActionObject, "error", err)
	}
}
