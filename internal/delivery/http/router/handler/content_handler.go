package handler

import (
	"net/http"

	"caftan/internal/delivery/http/response"
	"caftan/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultRelatedLimit = 3

// relatedQuery is the bound query of the related-articles route.
type relatedQuery struct {
	Limit int `query:"limit" validate:"min=1"`
}

// ContentHandler serves localized articles.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(contentUC usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUC: contentUC}
}

// ListArticles handles listing a locale's articles, newest first.
func (h *ContentHandler) ListArticles(c echo.Context) error {
	metas, err := h.contentUC.ListAll(c.Param("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metas, "Articles retrieved successfully")
}

// GetArticle handles resolving one article with locale fallback.
func (h *ContentHandler) GetArticle(c echo.Context) error {
	item, err := h.contentUC.GetItem(c.Param("slug"), c.Param("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Article retrieved successfully")
}

// GetFeatured handles listing a locale's featured articles.
func (h *ContentHandler) GetFeatured(c echo.Context) error {
	metas, err := h.contentUC.GetFeatured(c.Param("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metas, "Featured articles retrieved successfully")
}

// GetRelated handles listing articles related to one slug.
func (h *ContentHandler) GetRelated(c echo.Context) error {
	query := relatedQuery{Limit: defaultRelatedLimit}
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
	}

	metas, err := h.contentUC.GetRelated(c.Param("slug"), query.Limit, c.Param("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metas, "Related articles retrieved successfully")
}

// ListCategories handles listing a locale's article categories.
func (h *ContentHandler) ListCategories(c echo.Context) error {
	categories, err := h.contentUC.ListCategories(c.Param("locale"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}
