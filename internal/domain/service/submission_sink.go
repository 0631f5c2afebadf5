package service

import (
	"context"

	"caftan/internal/domain/entity"
)

// SinkResult is the outcome of one best-effort sink delivery. Failures
// are carried as values so they can be logged structurally; they never
// reach the submitter.
type SinkResult struct {
	Sink    string // Sink name for logging.
	Skipped bool   // Destination not configured; not a failure.
	Err     error  // Delivery failure, nil on success or skip.
}

// Ok reports whether the delivery succeeded or was skipped.
func (r SinkResult) Ok() bool {
	return r.Err == nil
}

// SubmissionSink receives one validated submission, best-effort.
type SubmissionSink interface {
	// Name identifies the sink in logs.
	Name() string

	// Deliver sends the submission. It never panics; delivery problems
	// come back inside the SinkResult.
	Deliver(ctx context.Context, sub *entity.Submission) SinkResult
}
