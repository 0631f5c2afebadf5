// Package entity contains the core business objects of the project.
package entity

// ShopListing is a read-optimized projection of a Shop used on index
// pages. Listings are derived, never independently persisted.
type ShopListing struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Tagline      string `json:"tagline"`
	HeroImage    string `json:"hero_image"`
	ItemCount    int    `json:"item_count"`
}

// ShopProductListing is a read-optimized projection of a Shop/CatalogItem
// pair. The slug pair must resolve to an existing Shop and CatalogItem
// within the same source.
type ShopProductListing struct {
	ShopSlug    string `json:"shop_slug"`
	ShopName    string `json:"shop_name"`
	ProductSlug string `json:"product_slug"`
	NameKey     string `json:"name_key"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Badge       Badge  `json:"badge,omitempty"`
}
