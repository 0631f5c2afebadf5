// Package staticdata bundles the fallback catalog shipped with the
// binary. It backs every entity family whenever the remote content
// store is absent or answers with zero records.
package staticdata

import (
	"embed"
	"encoding/json"

	"caftan/internal/domain/entity"
	"caftan/internal/domain/repository"

	"github.com/pkg/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// shopProductPair links one shop slug to one product slug. Pairs whose
// slugs do not resolve in the bundled dataset are dropped at load.
type shopProductPair struct {
	ShopSlug    string `json:"shop_slug"`
	ProductSlug string `json:"product_slug"`
}

// Catalog is the bundled dataset, decoded once at construction. It
// implements repository.StaticCatalog; accessors hand out copies so the
// bundled records stay immutable.
type Catalog struct {
	items    []entity.CatalogItem
	shops    []entity.Shop
	listings []entity.ShopListing
	products []entity.ShopProductListing
}

// New decodes the embedded dataset and derives the listing projections.
func New() (repository.StaticCatalog, error) {
	var items []entity.CatalogItem
	if err := load("data/catalog_items.json", &items); err != nil {
		return nil, err
	}

	var shops []entity.Shop
	if err := load("data/shops.json", &shops); err != nil {
		return nil, err
	}

	var pairs []shopProductPair
	if err := load("data/shop_products.json", &pairs); err != nil {
		return nil, err
	}

	itemsBySlug := make(map[string]entity.CatalogItem, len(items))
	for _, item := range items {
		itemsBySlug[item.Slug] = item
	}
	shopIndex := make(map[string]int, len(shops))
	for i, shop := range shops {
		shopIndex[shop.Slug] = i
	}

	// Attach featured items and build the shop/product projections from
	// the pair table. A pair only counts when both slugs resolve.
	var products []entity.ShopProductListing
	for _, pair := range pairs {
		idx, shopOK := shopIndex[pair.ShopSlug]
		item, itemOK := itemsBySlug[pair.ProductSlug]
		if !shopOK || !itemOK {
			continue
		}

		shops[idx].FeaturedItems = append(shops[idx].FeaturedItems, item)
		products = append(products, entity.ShopProductListing{
			ShopSlug:    pair.ShopSlug,
			ShopName:    shops[idx].Name,
			ProductSlug: item.Slug,
			NameKey:     item.NameKey,
			Price:       item.Price,
			Image:       item.Image,
			Badge:       item.Badge,
		})
	}

	listings := make([]entity.ShopListing, 0, len(shops))
	for _, shop := range shops {
		listings = append(listings, entity.ShopListing{
			Slug:         shop.Slug,
			Name:         shop.Name,
			City:         shop.Location.City,
			Neighborhood: shop.Location.Neighborhood,
			Tagline:      shop.Tagline,
			HeroImage:    shop.HeroImage,
			ItemCount:    len(shop.FeaturedItems),
		})
	}

	return &Catalog{
		items:    items,
		shops:    shops,
		listings: listings,
		products: products,
	}, nil
}

func load(name string, target any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "read embedded dataset %s", name)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "decode embedded dataset %s", name)
	}

	return nil
}

// CatalogItems returns a copy of the bundled catalog items.
func (c *Catalog) CatalogItems() []entity.CatalogItem {
	return append([]entity.CatalogItem(nil), c.items...)
}

// Shops returns a copy of the bundled shops.
func (c *Catalog) Shops() []entity.Shop {
	return append([]entity.Shop(nil), c.shops...)
}

// ShopListings returns a copy of the derived shop listings.
func (c *Catalog) ShopListings() []entity.ShopListing {
	return append([]entity.ShopListing(nil), c.listings...)
}

// ShopProductListings returns a copy of the derived shop/product listings.
func (c *Catalog) ShopProductListings() []entity.ShopProductListing {
	return append([]entity.ShopProductListing(nil), c.products...)
}
