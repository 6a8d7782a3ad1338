package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/status-im/crypto-insight-hub/interfaces"
)

// Kind names the pipeline action a job runs
type Kind string

const (
	KindDashboard Kind = "dashboard"
	KindInsight   Kind = "insight"
)

// Status is the lifecycle state of a job
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Finished reports whether the status is final
func (s Status) Finished() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// JobError describes why a job failed
type JobError struct {
	Kind      interfaces.FailureKind `json:"kind"`
	Message   string                 `json:"message"`
	Retryable bool                   `json:"retryable"`
}

// Job is an immutable snapshot of an asynchronous pipeline action
type Job struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      *JobError       `json:"error,omitempty"`
}

// Task is the work of a job. A non-nil result is kept even when err is set.
type Task func(ctx context.Context) (interface{}, error)

func newJobError(err error) *JobError {
	jobErr := &JobError{
		Kind:    interfaces.KindOf(err),
		Message: err.Error(),
	}
	var fetchErr *interfaces.FetchError
	if errors.As(err, &fetchErr) {
		jobErr.Retryable = fetchErr.Retryable()
	}
	return jobErr
}
