package usecase

import "caftan/internal/domain/entity"

// ContentUsecase resolves localized articles. A slug absent from the
// requested locale falls back to the single default locale in full;
// fields of two locales are never merged.
type ContentUsecase interface {
	// ListSlugs returns the slugs available under a locale.
	ListSlugs(locale string) ([]string, error)

	// GetItem resolves one article by slug and locale, applying the
	// default-locale fallback.
	GetItem(slug, locale string) (*entity.ContentItem, error)

	// ListAll returns the locale's articles sorted by date, descending.
	ListAll(locale string) ([]entity.ContentItemMeta, error)

	// GetFeatured returns the locale's featured articles, newest first.
	GetFeatured(locale string) ([]entity.ContentItemMeta, error)

	// GetRelated returns up to limit articles related to slug: same
	// category first, then by recency.
	GetRelated(slug string, limit int, locale string) ([]entity.ContentItemMeta, error)

	// ListCategories returns the distinct categories of a locale.
	ListCategories(locale string) ([]string, error)
}
