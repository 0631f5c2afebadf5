package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"caftan/internal/delivery/http/response"
	"caftan/internal/domain/entity"
	"caftan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContactHandler accepts tagged contact form submissions.
type ContactHandler struct {
	submissionUC usecase.SubmissionUsecase
	logger       *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(submissionUC usecase.SubmissionUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		submissionUC: submissionUC,
		logger:       logger,
	}
}

// Submit handles POST /api/contact. The body is an untyped JSON object;
// the usecase layer owns tag extraction and validation. A body that is
// not valid JSON answers with a generic message and never echoes the
// unparsed input.
func (h *ContactHandler) Submit(c echo.Context) error {
	raw, err := decodeBody(c)
	if err != nil {
		h.logger.Warn("contact submission body unparseable", slog.Any("error", err))

		return response.InternalServerError(c, "MALFORMED_BODY", "Something went wrong")
	}

	result, err := h.submissionUC.HandleSubmission(c.Request().Context(), raw)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Submission accepted")
}

// CreateRecord handles the gated POST /api/submissions used by the
// site's own backend and logged-in operators.
func (h *ContactHandler) CreateRecord(c echo.Context) error {
	raw, err := decodeBody(c)
	if err != nil {
		return response.InternalServerError(c, "MALFORMED_BODY", "Something went wrong")
	}

	result, err := h.submissionUC.CreateRecord(c.Request().Context(), raw)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Submission record created")
}

// listRecordsQuery is the bound query of the gated record listing.
type listRecordsQuery struct {
	FormType string `query:"formType" validate:"required,oneof=order partner general"`
}

// ListRecords handles the gated GET /api/submissions, reading stored
// records of one form type back from the content store.
func (h *ContactHandler) ListRecords(c echo.Context) error {
	var query listRecordsQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_FORM_TYPE", "Invalid form type")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "INVALID_FORM_TYPE", "Invalid form type")
	}

	records, err := h.submissionUC.ListRecords(c.Request().Context(), entity.FormType(query.FormType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Submission records retrieved successfully")
}

func decodeBody(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}
