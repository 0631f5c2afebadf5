package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "caftan/internal/delivery/context"
	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
	"caftan/internal/domain/service"
	"caftan/internal/usecase"
)

type submissionService struct {
	store  service.SubmissionSink
	hook   service.SubmissionSink
	source service.RemoteSource
	logger *slog.Logger
	now    func() time.Time
}

// NewSubmissionService creates the submission pipeline over its two
// sinks: the content-store write and the automation webhook. On the
// public path both are invoked concurrently and best-effort: a sink
// failure is logged and never changes the submitter-facing outcome, and
// neither sink sees the other's result. source backs the operator-side
// record listing.
func NewSubmissionService(store, hook service.SubmissionSink, source service.RemoteSource, logger *slog.Logger) usecase.SubmissionUsecase {
	return &submissionService{
		store:  store,
		hook:   hook,
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

func (s *submissionService) HandleSubmission(ctx context.Context, raw map[string]any) (*usecase.SubmissionResult, error) {
	sub, err := buildSubmission(raw, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, sub)

	return &usecase.SubmissionResult{
		FormType:    sub.FormType,
		SubmittedAt: sub.SubmittedAt,
	}, nil
}

func (s *submissionService) CreateRecord(ctx context.Context, raw map[string]any) (*usecase.SubmissionResult, error) {
	sub, err := buildSubmission(raw, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if sub.Collection() == "" {
		return nil, domainerrors.ErrInvalidFormType.WithDetails("general submissions are not stored")
	}

	result := s.store.Deliver(ctx, sub)
	s.logResult(ctx, result, sub)
	if result.Skipped {
		return nil, domainerrors.ErrStoreWriteFailed.WithDetails("content store is not configured")
	}
	if result.Err != nil {
		return nil, domainerrors.ErrStoreWriteFailed
	}

	return &usecase.SubmissionResult{
		FormType:    sub.FormType,
		SubmittedAt: sub.SubmittedAt,
	}, nil
}

// ListRecords reads stored submissions of one form type back from the
// content store. Only the stored types are listable; general inquiries
// have no collection.
func (s *submissionService) ListRecords(ctx context.Context, formType entity.FormType) ([]map[string]any, error) {
	if !formType.IsValid() {
		return nil, domainerrors.ErrInvalidFormType
	}

	collection := formType.Collection()
	if collection == "" {
		return nil, domainerrors.ErrInvalidFormType.WithDetails("general submissions are not stored")
	}

	if !s.source.IsConfigured() {
		return nil, domainerrors.ErrStoreUnavailable.WithDetails("content store is not configured")
	}

	return s.source.FetchCollection(ctx, collection, collectionLimit, flatDepth), nil
}

// fanOut dispatches the validated record to both sinks concurrently and
// waits for them, logging each outcome structurally.
func (s *submissionService) fanOut(ctx context.Context, sub *entity.Submission) {
	sinks := []service.SubmissionSink{s.store, s.hook}
	results := make([]service.SinkResult, len(sinks))

	var wg sync.WaitGroup
	for i, sink := range sinks {
		wg.Add(1)
		go func(i int, sink service.SubmissionSink) {
			defer wg.Done()
			results[i] = sink.Deliver(ctx, sub)
		}(i, sink)
	}
	wg.Wait()

	for _, result := range results {
		s.logResult(ctx, result, sub)
	}
}

func (s *submissionService) logResult(ctx context.Context, result service.SinkResult, sub *entity.Submission) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	switch {
	case result.Skipped:
		logger.Debug("submission sink skipped",
			slog.String("sink", result.Sink),
			slog.String("form_type", sub.FormType.String()),
		)
	case result.Err != nil:
		logger.Error("submission sink delivery failed",
			slog.String("sink", result.Sink),
			slog.String("form_type", sub.FormType.String()),
			slog.Any("error", result.Err),
		)
	default:
		logger.Info("submission sink delivered",
			slog.String("sink", result.Sink),
			slog.String("form_type", sub.FormType.String()),
		)
	}
}
