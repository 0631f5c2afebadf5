package impl

import (
	"context"

	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
	"caftan/internal/domain/repository"
	"caftan/internal/domain/service"
	"caftan/internal/usecase"
)

// Collection names and query shapes used against the remote store.
const (
	productsCollection = "products"
	shopsCollection    = "shops"

	collectionLimit = 100
	flatDepth       = 1 // bare references stay numeric
	expandedDepth   = 2 // nested media and product refs come expanded
)

type catalogService struct {
	source service.RemoteSource
	mapper service.RecordMapper
	static repository.StaticCatalog
}

// NewCatalogService creates the resolution facade. Policy per entity
// family: an unconfigured remote source, or a configured one that maps
// to zero records, resolves to the bundled dataset; a non-empty remote
// result wins outright. The two sources are never merged per record.
func NewCatalogService(source service.RemoteSource, mapper service.RecordMapper, static repository.StaticCatalog) usecase.CatalogUsecase {
	return &catalogService{
		source: source,
		mapper: mapper,
		static: static,
	}
}

func (s *catalogService) GetCatalogItems(ctx context.Context) []entity.CatalogItem {
	if !s.source.IsConfigured() {
		return s.static.CatalogItems()
	}

	docs := s.source.FetchCollection(ctx, productsCollection, collectionLimit, flatDepth)
	items := make([]entity.CatalogItem, 0, len(docs))
	for _, doc := range docs {
		if item, ok := s.mapper.MapCatalogItem(doc); ok {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return s.static.CatalogItems()
	}

	return items
}

func (s *catalogService) GetShops(ctx context.Context) []entity.Shop {
	if !s.source.IsConfigured() {
		return s.static.Shops()
	}

	docs := s.source.FetchCollection(ctx, shopsCollection, collectionLimit, expandedDepth)
	shops := make([]entity.Shop, 0, len(docs))
	for _, doc := range docs {
		if shop, ok := s.mapper.MapShop(doc); ok {
			shops = append(shops, shop)
		}
	}

	if len(shops) == 0 {
		return s.static.Shops()
	}

	return shops
}

func (s *catalogService) GetShop(ctx context.Context, slug string) (*entity.Shop, error) {
	for _, shop := range s.GetShops(ctx) {
		if shop.Slug == slug {
			return &shop, nil
		}
	}

	return nil, domainerrors.ErrShopNotFound
}

func (s *catalogService) GetShopListings(ctx context.Context) []entity.ShopListing {
	if !s.source.IsConfigured() {
		return s.static.ShopListings()
	}

	docs := s.source.FetchCollection(ctx, shopsCollection, collectionLimit, expandedDepth)
	listings := make([]entity.ShopListing, 0, len(docs))
	for _, doc := range docs {
		if listing, ok := s.mapper.MapShopListing(doc); ok {
			listings = append(listings, listing)
		}
	}

	if len(listings) == 0 {
		return s.static.ShopListings()
	}

	return listings
}

func (s *catalogService) GetShopProductListings(ctx context.Context) []entity.ShopProductListing {
	if !s.source.IsConfigured() {
		return s.static.ShopProductListings()
	}

	docs := s.source.FetchCollection(ctx, productsCollection, collectionLimit, expandedDepth)
	listings := make([]entity.ShopProductListing, 0, len(docs))
	for _, doc := range docs {
		if listing, ok := s.mapper.MapShopProductListing(doc); ok {
			listings = append(listings, listing)
		}
	}

	if len(listings) == 0 {
		return s.static.ShopProductListings()
	}

	return listings
}
