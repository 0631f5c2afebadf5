package cms

import (
	"testing"

	"caftan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticResolver resolves strings as-is and nested url fields, without
// a configured base.
type staticResolver struct{}

func (staticResolver) ResolveMediaURL(ref any) string {
	switch v := ref.(type) {
	case string:
		return v
	case map[string]any:
		s, _ := v["url"].(string)

		return s
	}

	return ""
}

func newTestMapper() *Mapper {
	return NewMapper(staticResolver{})
}

func TestMapCatalogItem_AppliesDefaults(t *testing.T) {
	// Image, colors, and badge absent: the documented defaults apply and
	// nothing is left unset.
	item, ok := newTestMapper().MapCatalogItem(map[string]any{
		"slug": "noor-classic",
		"name": "catalog.noorClassic",
	})

	require.True(t, ok)
	assert.Equal(t, DefaultItemImage, item.Image)
	assert.Equal(t, []string{}, item.Colors)
	assert.Equal(t, []string{}, item.Sizes)
	assert.Equal(t, entity.BadgeNone, item.Badge)
	assert.Equal(t, entity.FilterCategoryNone, item.Category)
	assert.Equal(t, "/catalog/noor-classic", item.Href)
	assert.Equal(t, "0", item.Price)
}

func TestMapCatalogItem_FullRecord(t *testing.T) {
	item, ok := newTestMapper().MapCatalogItem(map[string]any{
		"id":               float64(7),
		"slug":             "amira-velvet",
		"nameKey":          "catalog.amiraVelvet",
		"price":            "1850 MAD",
		"originalPrice":    "2200 MAD",
		"image":            map[string]any{"url": "/media/amira.jpg"},
		"colors":           []any{"Burgundy", map[string]any{"name": "Midnight Blue"}},
		"sizes":            []any{"S", "M"},
		"badge":            "sale",
		"featured":         true,
		"lookbookFeatured": true,
		"category":         "occasion",
	})

	require.True(t, ok)
	assert.Equal(t, 7, item.ID)
	assert.Equal(t, "catalog.amiraVelvet", item.NameKey)
	assert.Equal(t, "/media/amira.jpg", item.Image)
	assert.Equal(t, []string{"Burgundy", "Midnight Blue"}, item.Colors)
	assert.Equal(t, entity.BadgeSale, item.Badge)
	assert.Equal(t, entity.FilterCategoryOccasion, item.Category)
	assert.True(t, item.Featured)
}

func TestMapCatalogItem_NumericPriceAndUnknownBadge(t *testing.T) {
	item, ok := newTestMapper().MapCatalogItem(map[string]any{
		"slug":  "sahara-linen",
		"name":  "catalog.saharaLinen",
		"price": float64(950),
		"badge": "limited",
	})

	require.True(t, ok)
	assert.Equal(t, "950", item.Price)
	// Unknown badge values fall back to no badge.
	assert.Equal(t, entity.BadgeNone, item.Badge)
}

func TestMapCatalogItem_MinimalBar(t *testing.T) {
	mapper := newTestMapper()

	_, ok := mapper.MapCatalogItem(map[string]any{"name": "no slug"})
	assert.False(t, ok)

	_, ok = mapper.MapCatalogItem(map[string]any{"slug": "no-name"})
	assert.False(t, ok)

	// Bare numeric references where objects were expected must not panic.
	item, ok := mapper.MapCatalogItem(map[string]any{
		"slug":   "ref-heavy",
		"name":   "x",
		"image":  float64(42),
		"colors": float64(7),
	})
	require.True(t, ok)
	assert.Equal(t, DefaultItemImage, item.Image)
	assert.Equal(t, []string{}, item.Colors)
}

func TestMapShop_DefaultsAndNested(t *testing.T) {
	shop, ok := newTestMapper().MapShop(map[string]any{
		"slug": "dar-noor",
		"name": "Dar Noor",
		"location": map[string]any{
			"city":         "Rabat",
			"neighborhood": "Medina",
		},
		"featuredProducts": []any{
			map[string]any{"slug": "noor-classic", "name": "catalog.noorClassic"},
			float64(9), // unexpanded ref, skipped
		},
	})

	require.True(t, ok)
	assert.Equal(t, "Rabat", shop.Location.City)
	assert.Equal(t, DefaultShopHero, shop.HeroImage)
	assert.Equal(t, []string{}, shop.Gallery)
	assert.Equal(t, DefaultHoursWeekdays, shop.Hours.Weekdays)
	assert.Equal(t, DefaultHoursSunday, shop.Hours.Sunday)
	require.Len(t, shop.FeaturedItems, 1)
	assert.Equal(t, "noor-classic", shop.FeaturedItems[0].Slug)
}

func TestMapShop_RequiresSlugAndName(t *testing.T) {
	mapper := newTestMapper()

	_, ok := mapper.MapShop(map[string]any{"name": "Nameless Slug"})
	assert.False(t, ok)

	_, ok = mapper.MapShop(map[string]any{"slug": "slug-only"})
	assert.False(t, ok)
}

func TestMapShopListing(t *testing.T) {
	listing, ok := newTestMapper().MapShopListing(map[string]any{
		"slug":    "dar-noor",
		"name":    "Dar Noor",
		"tagline": "Timeless elegance",
		"location": map[string]any{
			"city": "Rabat",
		},
	})

	require.True(t, ok)
	assert.Equal(t, "dar-noor", listing.Slug)
	assert.Equal(t, "Rabat", listing.City)
	assert.Zero(t, listing.ItemCount)
}

func TestMapShopProductListing(t *testing.T) {
	mapper := newTestMapper()

	listing, ok := mapper.MapShopProductListing(map[string]any{
		"slug":  "noor-classic",
		"name":  "catalog.noorClassic",
		"price": "1200 MAD",
		"shop": map[string]any{
			"slug": "dar-noor",
			"name": "Dar Noor",
		},
	})
	require.True(t, ok)
	assert.Equal(t, "dar-noor", listing.ShopSlug)
	assert.Equal(t, "noor-classic", listing.ProductSlug)

	// A bare shop reference cannot satisfy the slug-pair invariant.
	_, ok = mapper.MapShopProductListing(map[string]any{
		"slug": "noor-classic",
		"name": "catalog.noorClassic",
		"shop": float64(3),
	})
	assert.False(t, ok)
}
