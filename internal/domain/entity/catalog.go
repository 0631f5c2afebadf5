// Package entity contains the core business objects of the project.
package entity

// Badge marks a catalog item with a merchandising label.
type Badge string

const (
	// BadgeNew marks a recently added item.
	BadgeNew Badge = "new"
	// BadgeBestseller marks a top selling item.
	BadgeBestseller Badge = "bestseller"
	// BadgeSale marks a discounted item.
	BadgeSale Badge = "sale"
	// BadgeNone is the absence of a badge.
	BadgeNone Badge = ""
)

// String returns the string representation of the Badge.
func (b Badge) String() string {
	return string(b)
}

// IsValid checks if the Badge is a valid value. The empty badge is valid.
func (b Badge) IsValid() bool {
	switch b {
	case BadgeNew, BadgeBestseller, BadgeSale, BadgeNone:
		return true
	default:
		return false
	}
}

// FilterCategory groups catalog items for the storefront filters.
type FilterCategory string

const (
	FilterCategoryClassic  FilterCategory = "classic"
	FilterCategoryModern   FilterCategory = "modern"
	FilterCategoryOccasion FilterCategory = "occasion"
	FilterCategoryEveryday FilterCategory = "everyday"
	FilterCategoryNone     FilterCategory = ""
)

// IsValid checks if the FilterCategory is a valid value. The empty category is valid.
func (f FilterCategory) IsValid() bool {
	switch f {
	case FilterCategoryClassic, FilterCategoryModern, FilterCategoryOccasion, FilterCategoryEveryday, FilterCategoryNone:
		return true
	default:
		return false
	}
}

// CatalogItem represents one sellable garment in the storefront catalog.
// Instances are immutable value records produced fresh per request.
type CatalogItem struct {
	ID               int            `json:"id"`                       // Numeric identifier within the source.
	Slug             string         `json:"slug"`                     // Unique within one source.
	NameKey          string         `json:"name_key"`                 // Display/title translation key.
	Price            string         `json:"price"`                    // Formatted price string.
	OriginalPrice    string         `json:"original_price,omitempty"` // Pre-discount price, empty when not on sale.
	Image            string         `json:"image"`                    // Resolved image URL or bundled placeholder.
	Colors           []string       `json:"colors"`
	Sizes            []string       `json:"sizes"`
	Badge            Badge          `json:"badge,omitempty"`
	Featured         bool           `json:"featured"`
	LookbookFeatured bool           `json:"lookbook_featured"`
	Category         FilterCategory `json:"category,omitempty"`
	Href             string         `json:"href"` // Navigational link for the storefront.
}
