package service

import "caftan/internal/domain/entity"

// RecordMapper converts raw remote records into domain entities. Every
// mapping is total over schema-shaped input; ok=false marks a record
// below the minimal bar, which the caller drops.
type RecordMapper interface {
	MapCatalogItem(raw map[string]any) (entity.CatalogItem, bool)
	MapShop(raw map[string]any) (entity.Shop, bool)
	MapShopListing(raw map[string]any) (entity.ShopListing, bool)
	MapShopProductListing(raw map[string]any) (entity.ShopProductListing, bool)
}
