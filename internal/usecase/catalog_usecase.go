package usecase

import (
	"context"

	"caftan/internal/domain/entity"
)

// CatalogUsecase defines the resolution facade over the remote content
// store and the bundled fallback dataset. Each accessor returns either
// the remote-mapped records or the bundled records for that family,
// never a mix, and never an error: every remote failure already
// degraded to zero records below this layer.
type CatalogUsecase interface {
	// GetCatalogItems returns the catalog item family.
	GetCatalogItems(ctx context.Context) []entity.CatalogItem

	// GetShops returns the shop family.
	GetShops(ctx context.Context) []entity.Shop

	// GetShop returns one shop by slug from the resolved shop family.
	GetShop(ctx context.Context, slug string) (*entity.Shop, error)

	// GetShopListings returns the shop index projections.
	GetShopListings(ctx context.Context) []entity.ShopListing

	// GetShopProductListings returns the shop/product index projections.
	GetShopProductListings(ctx context.Context) []entity.ShopProductListing
}
