// Package entity contains the core business objects of the project.
package entity

// ContentAuthor is the author sub-record of a localized article.
type ContentAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// ContentItem represents one localized article. Articles are read-only,
// sourced from locale-partitioned storage at request time.
type ContentItem struct {
	Slug     string        `json:"slug"` // Unique per locale.
	Title    string        `json:"title"`
	Excerpt  string        `json:"excerpt"`
	Body     string        `json:"body"`
	Image    string        `json:"image"`
	Category string        `json:"category"`
	Date     string        `json:"date"` // ISO date, used for ordering.
	ReadTime string        `json:"read_time"`
	Featured bool          `json:"featured"`
	Author   ContentAuthor `json:"author"`
}

// ContentItemMeta is the listing projection of a ContentItem, without
// the full body.
type ContentItemMeta struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Excerpt  string        `json:"excerpt"`
	Image    string        `json:"image"`
	Category string        `json:"category"`
	Date     string        `json:"date"`
	ReadTime string        `json:"read_time"`
	Featured bool          `json:"featured"`
	Author   ContentAuthor `json:"author"`
}

// Meta returns the listing projection of the item.
func (c ContentItem) Meta() ContentItemMeta {
	return ContentItemMeta{
		Slug:     c.Slug,
		Title:    c.Title,
		Excerpt:  c.Excerpt,
		Image:    c.Image,
		Category: c.Category,
		Date:     c.Date,
		ReadTime: c.ReadTime,
		Featured: c.Featured,
		Author:   c.Author,
	}
}
