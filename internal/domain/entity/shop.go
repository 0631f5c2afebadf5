// Package entity contains the core business objects of the project.
package entity

// ShopLocation describes where a boutique is found.
type ShopLocation struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
	MapURL       string `json:"map_url"`
}

// ShopContact holds the boutique's contact channels.
type ShopContact struct {
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram,omitempty"`
}

// ShopHours describes opening hours as display strings.
type ShopHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

// Shop represents one boutique of the network. A shop resolved from the
// remote store must carry a non-empty slug and name or it is excluded
// from mapping.
type Shop struct {
	Slug            string        `json:"slug"` // Unique across the network.
	Name            string        `json:"name"`
	Tagline         string        `json:"tagline"`
	Location        ShopLocation  `json:"location"`
	Contact         ShopContact   `json:"contact"`
	Story           string        `json:"story"`
	EstablishedYear string        `json:"established_year"`
	HeroImage       string        `json:"hero_image"`
	Gallery         []string      `json:"gallery"` // Ordered.
	Specialties     []string      `json:"specialties"`
	FeaturedItems   []CatalogItem `json:"featured_items"`
	Hours           ShopHours     `json:"hours"`
}
