package jobs

import (
	"context"
	"errors"
)

var (
	ErrQueueFull   = errors.New("task queue is full")
	ErrQueueClosed = errors.New("task queue is closed")
)

// TaskQueue hands uploaded workbooks to the workers. When ctx carries a
// store transaction the job only becomes visible once it commits.
type TaskQueue interface {
	EnqueueAssumption(ctx context.Context, path, name string) error
}
