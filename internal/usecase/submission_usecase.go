package usecase

import (
	"context"
	"time"

	"caftan/internal/domain/entity"
)

// SubmissionResult is what the submitter learns about an accepted
// submission. Sink outcomes are not part of it: the submitter only
// learns that the submission was accepted, never how downstream
// automation fared.
type SubmissionResult struct {
	FormType    entity.FormType `json:"formType"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// SubmissionUsecase validates a raw tagged form payload, builds the
// normalized record, and fans it out to the configured sinks,
// best-effort. Only tag and validation problems come back as errors.
type SubmissionUsecase interface {
	// HandleSubmission processes one untyped form payload.
	HandleSubmission(ctx context.Context, raw map[string]any) (*SubmissionResult, error)

	// CreateRecord validates the payload and writes it to the content
	// store only. This is the gated operator path: unlike the public
	// pipeline, a store failure is surfaced to the caller.
	CreateRecord(ctx context.Context, raw map[string]any) (*SubmissionResult, error)

	// ListRecords returns the stored submission records of a form type,
	// as raw documents from the content store.
	ListRecords(ctx context.Context, formType entity.FormType) ([]map[string]any, error)
}
