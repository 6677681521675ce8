package client

import (
	"fmt"
	"time"

	"github.com/dragonnestlite/assetgen/internal/model"
)

// APIError is a rejected or malformed response from a remote service
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("%s failed: HTTP %d - %s", e.Op, e.StatusCode, e.Body)
}

// JobFailedError is a remote job that reached a failure terminal state.
// Message is the remote task_error message, or model.UnknownJobError.
type JobFailedError struct {
	Label   string
	JobID   string
	Status  string
	Message string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("%s task %s %s: %s", e.Label, e.JobID, e.Status, e.Message)
}

// PollTimeoutError is a job still not terminal after the attempt budget
type PollTimeoutError struct {
	Label  string
	JobID  string
	Waited time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("%s task %s timed out after %s", e.Label, e.JobID, e.Waited)
}

func newJobFailedError(label string, job *model.Job) *JobFailedError {
	return &JobFailedError{
		Label:   label,
		JobID:   job.ID,
		Status:  job.RawStatus,
		Message: job.ErrorMessage(),
	}
}
