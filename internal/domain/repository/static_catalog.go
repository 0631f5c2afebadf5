package repository

import "caftan/internal/domain/entity"

// StaticCatalog is the bundled fallback dataset, one accessor per entity
// family. Accessors return fresh copies; callers may not observe shared
// mutation.
type StaticCatalog interface {
	CatalogItems() []entity.CatalogItem
	Shops() []entity.Shop
	ShopListings() []entity.ShopListing
	ShopProductListings() []entity.ShopProductListing
}
