package jobs

import (
	"time"

	"github.com/riverqueue/river"
)

const (
	JobKind       = "assumption_process"
	DefaultQueue  = "assumptions"
	MaxJobRetries = 1
	JobTimeout    = 10 * time.Minute
)

// AssumptionArgs is stored in river_job.args. Path points to the uploaded
// workbook; the worker owns the file once the job is enqueued.
type AssumptionArgs struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

func (AssumptionArgs) Kind() string {
	return JobKind
}

func (AssumptionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       DefaultQueue,
		MaxAttempts: MaxJobRetries,
	}
}
