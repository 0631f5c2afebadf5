package handler

import (
	"log/slog"
	"net/http"

	"caftan/internal/delivery/http/response"
	"caftan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the resolved catalog and shop families.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// GetCatalogItems handles listing the catalog item family.
func (h *CatalogHandler) GetCatalogItems(c echo.Context) error {
	items := h.catalogUC.GetCatalogItems(c.Request().Context())

	return response.Success(c, http.StatusOK, items, "Catalog items retrieved successfully")
}

// GetShops handles listing the shop family.
func (h *CatalogHandler) GetShops(c echo.Context) error {
	shops := h.catalogUC.GetShops(c.Request().Context())

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// GetShop handles retrieving one shop by slug.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_SLUG", "Shop slug is required")
	}

	shop, err := h.catalogUC.GetShop(c.Request().Context(), slug)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// GetShopListings handles the shop index projections.
func (h *CatalogHandler) GetShopListings(c echo.Context) error {
	listings := h.catalogUC.GetShopListings(c.Request().Context())

	return response.Success(c, http.StatusOK, listings, "Shop listings retrieved successfully")
}

// GetShopProductListings handles the shop/product index projections.
func (h *CatalogHandler) GetShopProductListings(c echo.Context) error {
	listings := h.catalogUC.GetShopProductListings(c.Request().Context())

	return response.Success(c, http.StatusOK, listings, "Shop product listings retrieved successfully")
}
