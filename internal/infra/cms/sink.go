package cms

import (
	"context"

	"caftan/internal/domain/entity"
	"caftan/internal/domain/service"
)

const sinkName = "content_store"

// StoreSink adapts the content store write path to the submission
// fan-out. Deliveries are skipped, not failed, when the store is
// unconfigured or the form type has no collection.
type StoreSink struct {
	creator service.DocumentCreator
}

// NewStoreSink creates the content store submission sink.
func NewStoreSink(creator service.DocumentCreator) *StoreSink {
	return &StoreSink{creator: creator}
}

// Name identifies the sink in logs.
func (s *StoreSink) Name() string {
	return sinkName
}

// Deliver writes the submission into its collection.
func (s *StoreSink) Deliver(ctx context.Context, sub *entity.Submission) service.SinkResult {
	collection := sub.Collection()
	if collection == "" || !s.creator.IsConfigured() {
		return service.SinkResult{Sink: sinkName, Skipped: true}
	}

	if err := s.creator.CreateDocument(ctx, collection, sub); err != nil {
		return service.SinkResult{Sink: sinkName, Err: err}
	}

	return service.SinkResult{Sink: sinkName}
}
