package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
	"caftan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures deliveries and answers with a canned result.
type recordingSink struct {
	mu       sync.Mutex
	name     string
	result   service.SinkResult
	received []*entity.Submission
}

func (s *recordingSink) Name() string {
	return s.name
}

func (s *recordingSink) Deliver(_ context.Context, sub *entity.Submission) service.SinkResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, sub)
	result := s.result
	result.Sink = s.name

	return result
}

func (s *recordingSink) deliveries() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.received)
}

func newTestService(store, hook service.SubmissionSink) *submissionService {
	return newTestServiceWithSource(store, hook, &fakeSource{})
}

func newTestServiceWithSource(store, hook service.SubmissionSink, source *fakeSource) *submissionService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSubmissionService(store, hook, source, logger).(*submissionService)
}

func TestHandleSubmission_InvalidFormType(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "bogus",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFormType)
	assert.Zero(t, store.deliveries())
	assert.Zero(t, hook.deliveries())
}

func TestHandleSubmission_MissingFormType(t *testing.T) {
	svc := newTestService(&recordingSink{name: "content_store"}, &recordingSink{name: "automation_webhook"})

	_, err := svc.HandleSubmission(context.Background(), map[string]any{"email": "a@b.com"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFormType)
}

func TestHandleSubmission_OrderMissingFirstName(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "order",
		"firstName": "",
		"lastName":  "Doe",
		"email":     "a@b.com",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "order form")
	assert.Contains(t, appErr.Details(), "firstName")

	// The record is never constructed or forwarded.
	assert.Zero(t, store.deliveries())
	assert.Zero(t, hook.deliveries())
}

func TestHandleSubmission_PartnerRequiresShopFields(t *testing.T) {
	svc := newTestService(&recordingSink{name: "content_store"}, &recordingSink{name: "automation_webhook"})

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "partner",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "shopName")
	assert.Contains(t, appErr.Details(), "shopCity")
}

func TestHandleSubmission_PartnerSucceedsDespiteSinkFailure(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{
		name:   "automation_webhook",
		result: service.SinkResult{Err: errors.New("connection refused")},
	}
	svc := newTestService(store, hook)

	result, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "partner",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"shopName":  "Boutique X",
		"shopCity":  "Rabat",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.FormTypePartner, result.FormType)
	assert.False(t, result.SubmittedAt.IsZero())

	assert.Equal(t, 1, store.deliveries())
	assert.Equal(t, 1, hook.deliveries())
}

func TestHandleSubmission_OrderBuildsNormalizedRecord(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":    "order",
		"firstName":   "  Amal ",
		"lastName":    "Idrissi",
		"email":       "amal@example.com",
		"newsletter":  true,
		"locale":      "fr",
		"quantity":    float64(2),
		"size":        "M",
		"color":       "Navy",
		"shopSlug":    "dar-noor",
		"productSlug": "noor-classic",
	})
	require.NoError(t, err)

	require.Equal(t, 1, store.deliveries())
	sub := store.received[0]
	assert.Equal(t, entity.FormTypeOrder, sub.FormType)
	assert.Equal(t, "Amal", sub.FirstName)
	assert.True(t, sub.Newsletter)
	require.NotNil(t, sub.Order)
	assert.Nil(t, sub.Partner)
	assert.Equal(t, 2, sub.Order.Quantity)
	assert.Equal(t, "dar-noor", sub.Order.ShopSlug)
	assert.Equal(t, "orders", sub.Collection())
}

func TestHandleSubmission_GeneralHasNoCollection(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "general",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"message":   "Salam",
	})
	require.NoError(t, err)

	require.Equal(t, 1, store.deliveries())
	assert.Equal(t, "", store.received[0].Collection())
}

func TestCreateRecord_WritesStoreOnly(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	result, err := svc.CreateRecord(context.Background(), map[string]any{
		"formType":  "partner",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"shopName":  "Boutique X",
		"shopCity":  "Rabat",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.FormTypePartner, result.FormType)
	assert.Equal(t, 1, store.deliveries())
	assert.Zero(t, hook.deliveries(), "the gated path must not touch the webhook")
}

func TestCreateRecord_SurfacesStoreFailure(t *testing.T) {
	store := &recordingSink{
		name:   "content_store",
		result: service.SinkResult{Err: errors.New("store down")},
	}
	svc := newTestService(store, &recordingSink{name: "automation_webhook"})

	_, err := svc.CreateRecord(context.Background(), map[string]any{
		"formType":  "order",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrStoreWriteFailed)
}

func TestCreateRecord_SkippedStoreIsAnError(t *testing.T) {
	store := &recordingSink{
		name:   "content_store",
		result: service.SinkResult{Skipped: true},
	}
	svc := newTestService(store, &recordingSink{name: "automation_webhook"})

	_, err := svc.CreateRecord(context.Background(), map[string]any{
		"formType":  "order",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "not configured")
}

func TestListRecords_ReadsStoredCollection(t *testing.T) {
	source := &fakeSource{
		configured: true,
		docs: map[string][]map[string]any{
			"orders": {{"email": "amal@example.com"}},
		},
	}
	svc := newTestServiceWithSource(
		&recordingSink{name: "content_store"},
		&recordingSink{name: "automation_webhook"},
		source,
	)

	records, err := svc.ListRecords(context.Background(), entity.FormTypeOrder)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "amal@example.com", records[0]["email"])
}

func TestListRecords_GeneralHasNoCollection(t *testing.T) {
	svc := newTestServiceWithSource(
		&recordingSink{name: "content_store"},
		&recordingSink{name: "automation_webhook"},
		&fakeSource{configured: true},
	)

	_, err := svc.ListRecords(context.Background(), entity.FormTypeGeneral)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_FORM_TYPE", appErr.ErrorCode())
}

func TestListRecords_UnconfiguredStore(t *testing.T) {
	svc := newTestServiceWithSource(
		&recordingSink{name: "content_store"},
		&recordingSink{name: "automation_webhook"},
		&fakeSource{},
	)

	_, err := svc.ListRecords(context.Background(), entity.FormTypePartner)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestHandleSubmission_OverlongQuantityDefaultsToOne(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	hook := &recordingSink{name: "automation_webhook"}
	svc := newTestService(store, hook)

	_, err := svc.HandleSubmission(context.Background(), map[string]any{
		"formType":  "order",
		"firstName": "Amal",
		"lastName":  "Idrissi",
		"email":     "amal@example.com",
		"quantity":  "99999999999999999999",
	})
	require.NoError(t, err)

	require.Equal(t, 1, store.deliveries())
	assert.Equal(t, 1, store.received[0].Order.Quantity)
}

func TestCreateRecord_GeneralHasNoCollection(t *testing.T) {
	store := &recordingSink{name: "content_store"}
	svc := newTestService(store, &recordingSink{name: "automation_webhook"})

	_, err := svc.CreateRecord(context.Background(), map[string]any{
		"formType":  "general",
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_FORM_TYPE", appErr.ErrorCode())
	assert.Zero(t, store.deliveries(), "general records never reach the store sink")
}
