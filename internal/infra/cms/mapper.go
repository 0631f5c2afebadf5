package cms

import (
	"strconv"

	"caftan/internal/domain/entity"
)

// Documented defaults applied whenever a remote record omits a field.
// Every default is a named constant so the mapping stays testable.
const (
	// DefaultItemImage is used when a product record carries no usable image.
	DefaultItemImage = "/images/catalog/placeholder.jpg"
	// DefaultShopHero is used when a shop record carries no hero image.
	DefaultShopHero = "/images/shops/placeholder.jpg"
	// DefaultHoursWeekdays is the opening-hours fallback for weekdays.
	DefaultHoursWeekdays = "10:00 - 20:00"
	// DefaultHoursSaturday is the opening-hours fallback for Saturday.
	DefaultHoursSaturday = "10:00 - 20:00"
	// DefaultHoursSunday is the opening-hours fallback for Sunday.
	DefaultHoursSunday = "Closed"
	// catalogHrefPrefix builds the navigational link for a catalog item.
	catalogHrefPrefix = "/catalog/"
)

// MediaResolver resolves a raw media reference into an absolute URL.
type MediaResolver interface {
	ResolveMediaURL(ref any) string
}

// Mapper converts raw content store records into domain entities. Every
// mapping is total: for any record that satisfies the minimal bar
// (non-empty slug plus name or title as applicable) it returns a fully
// populated entity; no field is ever left unset. Records below the bar
// report ok=false and are dropped by the caller.
type Mapper struct {
	media MediaResolver
}

// NewMapper creates a mapper resolving media references through the
// given resolver.
func NewMapper(media MediaResolver) *Mapper {
	return &Mapper{media: media}
}

// MapCatalogItem maps one raw product record. ok is false when the
// record misses its slug or display name.
func (m *Mapper) MapCatalogItem(raw map[string]any) (entity.CatalogItem, bool) {
	slug := str(raw, "slug")
	name := firstNonEmpty(str(raw, "nameKey"), str(raw, "name"), str(raw, "title"))
	if slug == "" || name == "" {
		return entity.CatalogItem{}, false
	}

	item := entity.CatalogItem{
		ID:               intField(raw, "id"),
		Slug:             slug,
		NameKey:          name,
		Price:            firstNonEmpty(str(raw, "price"), "0"),
		OriginalPrice:    str(raw, "originalPrice"),
		Image:            m.imageOrDefault(raw["image"], DefaultItemImage),
		Colors:           strSlice(raw, "colors"),
		Sizes:            strSlice(raw, "sizes"),
		Badge:            entity.BadgeNone,
		Featured:         boolField(raw, "featured"),
		LookbookFeatured: boolField(raw, "lookbookFeatured"),
		Category:         entity.FilterCategoryNone,
		Href:             catalogHrefPrefix + slug,
	}

	if badge := entity.Badge(str(raw, "badge")); badge.IsValid() {
		item.Badge = badge
	}
	if category := entity.FilterCategory(str(raw, "category")); category.IsValid() {
		item.Category = category
	}
	if href := str(raw, "href"); href != "" {
		item.Href = href
	}

	return item, true
}

// MapShop maps one raw shop record. ok is false when the record misses
// its slug or name; such shops are excluded from resolution entirely.
func (m *Mapper) MapShop(raw map[string]any) (entity.Shop, bool) {
	slug := str(raw, "slug")
	name := str(raw, "name")
	if slug == "" || name == "" {
		return entity.Shop{}, false
	}

	shop := entity.Shop{
		Slug:    slug,
		Name:    name,
		Tagline: str(raw, "tagline"),
		Location: entity.ShopLocation{
			City:         nestedStr(raw, "location", "city"),
			Neighborhood: nestedStr(raw, "location", "neighborhood"),
			Address:      nestedStr(raw, "location", "address"),
			MapURL:       nestedStr(raw, "location", "mapUrl"),
		},
		Contact: entity.ShopContact{
			Phone:     nestedStr(raw, "contact", "phone"),
			WhatsApp:  nestedStr(raw, "contact", "whatsapp"),
			Instagram: nestedStr(raw, "contact", "instagram"),
		},
		Story:           str(raw, "story"),
		EstablishedYear: str(raw, "establishedYear"),
		HeroImage:       m.imageOrDefault(raw["heroImage"], DefaultShopHero),
		Gallery:         m.gallery(raw["gallery"]),
		Specialties:     strSlice(raw, "specialties"),
		FeaturedItems:   m.featuredItems(raw["featuredProducts"]),
		Hours: entity.ShopHours{
			Weekdays: firstNonEmpty(nestedStr(raw, "hours", "weekdays"), DefaultHoursWeekdays),
			Saturday: firstNonEmpty(nestedStr(raw, "hours", "saturday"), DefaultHoursSaturday),
			Sunday:   firstNonEmpty(nestedStr(raw, "hours", "sunday"), DefaultHoursSunday),
		},
	}

	return shop, true
}

// MapShopListing projects one raw shop record onto the index listing
// shape, under the same minimal bar as MapShop.
func (m *Mapper) MapShopListing(raw map[string]any) (entity.ShopListing, bool) {
	shop, ok := m.MapShop(raw)
	if !ok {
		return entity.ShopListing{}, false
	}

	return entity.ShopListing{
		Slug:         shop.Slug,
		Name:         shop.Name,
		City:         shop.Location.City,
		Neighborhood: shop.Location.Neighborhood,
		Tagline:      shop.Tagline,
		HeroImage:    shop.HeroImage,
		ItemCount:    len(shop.FeaturedItems),
	}, true
}

// MapShopProductListing projects one raw product record whose shop
// reference was expanded. ok is false when the product misses its
// minimal bar or the shop reference is a bare id instead of an expanded
// object carrying a slug.
func (m *Mapper) MapShopProductListing(raw map[string]any) (entity.ShopProductListing, bool) {
	item, ok := m.MapCatalogItem(raw)
	if !ok {
		return entity.ShopProductListing{}, false
	}

	shopRef, ok := raw["shop"].(map[string]any)
	if !ok {
		return entity.ShopProductListing{}, false
	}
	shopSlug := str(shopRef, "slug")
	if shopSlug == "" {
		return entity.ShopProductListing{}, false
	}

	return entity.ShopProductListing{
		ShopSlug:    shopSlug,
		ShopName:    str(shopRef, "name"),
		ProductSlug: item.Slug,
		NameKey:     item.NameKey,
		Price:       item.Price,
		Image:       item.Image,
		Badge:       item.Badge,
	}, true
}

func (m *Mapper) imageOrDefault(ref any, fallback string) string {
	if url := m.media.ResolveMediaURL(ref); url != "" {
		return url
	}

	return fallback
}

func (m *Mapper) gallery(ref any) []string {
	items, ok := ref.([]any)
	if !ok {
		return []string{}
	}

	urls := make([]string, 0, len(items))
	for _, item := range items {
		if url := m.media.ResolveMediaURL(item); url != "" {
			urls = append(urls, url)
		}
	}

	return urls
}

func (m *Mapper) featuredItems(ref any) []entity.CatalogItem {
	docs, ok := ref.([]any)
	if !ok {
		return []entity.CatalogItem{}
	}

	items := make([]entity.CatalogItem, 0, len(docs))
	for _, doc := range docs {
		// Bare numeric references stay unexpanded at low depth; only
		// expanded objects can be mapped.
		raw, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		if item, ok := m.MapCatalogItem(raw); ok {
			items = append(items, item)
		}
	}

	return items
}

// str reads a string field, coercing numbers to their decimal form.
func str(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// nestedStr reads a string field one object deep.
func nestedStr(raw map[string]any, key, sub string) string {
	nested, ok := raw[key].(map[string]any)
	if !ok {
		return ""
	}

	return str(nested, sub)
}

// strSlice reads a list of strings or of objects carrying a name/label,
// always returning a non-nil slice.
func strSlice(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return []string{}
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				values = append(values, v)
			}
		case map[string]any:
			if name := firstNonEmpty(str(v, "name"), str(v, "label")); name != "" {
				values = append(values, name)
			}
		}
	}

	return values
}

func boolField(raw map[string]any, key string) bool {
	v, _ := raw[key].(bool)

	return v
}

func intField(raw map[string]any, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
