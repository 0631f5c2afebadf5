package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caftan/internal/delivery/http/validator"
	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
	"caftan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionUC struct {
	result     *usecase.SubmissionResult
	records    []map[string]any
	err        error
	lastRaw    map[string]any
	handleCall int
	createCall int
}

func (f *fakeSubmissionUC) HandleSubmission(ctx context.Context, raw map[string]any) (*usecase.SubmissionResult, error) {
	f.handleCall++
	f.lastRaw = raw

	return f.result, f.err
}

func (f *fakeSubmissionUC) CreateRecord(ctx context.Context, raw map[string]any) (*usecase.SubmissionResult, error) {
	f.createCall++
	f.lastRaw = raw

	return f.result, f.err
}

func (f *fakeSubmissionUC) ListRecords(ctx context.Context, formType entity.FormType) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

func newContactContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestContactHandler_Submit(t *testing.T) {
	uc := &fakeSubmissionUC{
		result: &usecase.SubmissionResult{
			FormType:    "order",
			SubmittedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newContactContext(t, `{"formType":"order","firstName":"Lina","email":"lina@example.com"}`)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"formType":"order"`)
	assert.Equal(t, 1, uc.handleCall)
	assert.Equal(t, "order", uc.lastRaw["formType"])
}

func TestContactHandler_Submit_MalformedBody(t *testing.T) {
	uc := &fakeSubmissionUC{}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newContactContext(t, `{"formType": "order", broken`)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The unparsed input must never be echoed back.
	assert.NotContains(t, rec.Body.String(), "broken")
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Equal(t, 0, uc.handleCall)
}

func TestContactHandler_Submit_ValidationError(t *testing.T) {
	uc := &fakeSubmissionUC{
		err: domainerrors.ErrValidationFailed.WithDetails("order form is missing required fields: firstName"),
	}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newContactContext(t, `{"formType":"order"}`)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "firstName")
}

func TestContactHandler_CreateRecord(t *testing.T) {
	uc := &fakeSubmissionUC{
		result: &usecase.SubmissionResult{FormType: "partner", SubmittedAt: time.Now()},
	}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newContactContext(t, `{"formType":"partner","firstName":"Omar","email":"omar@example.com"}`)
	require.NoError(t, h.CreateRecord(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, uc.createCall)
	assert.Equal(t, 0, uc.handleCall)
}

func TestContactHandler_CreateRecord_StoreFailure(t *testing.T) {
	uc := &fakeSubmissionUC{
		err: domainerrors.ErrStoreWriteFailed.WithDetails("content store is not configured"),
	}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newContactContext(t, `{"formType":"order","firstName":"Lina","email":"lina@example.com"}`)
	require.NoError(t, h.CreateRecord(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestContactHandler_ListRecords(t *testing.T) {
	uc := &fakeSubmissionUC{
		records: []map[string]any{{"email": "amal@example.com"}},
	}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newGetContext("/api/submissions?formType=order")
	require.NoError(t, h.ListRecords(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amal@example.com")
}

func TestContactHandler_ListRecords_RequiresFormType(t *testing.T) {
	uc := &fakeSubmissionUC{}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newGetContext("/api/submissions")
	require.NoError(t, h.ListRecords(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FORM_TYPE")
}

func TestContactHandler_ListRecords_RejectsUnknownFormType(t *testing.T) {
	uc := &fakeSubmissionUC{}
	h := NewContactHandler(uc, slog.Default())

	c, rec := newGetContext("/api/submissions?formType=bogus")
	require.NoError(t, h.ListRecords(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
