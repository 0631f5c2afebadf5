// Package repository defines data access interfaces for the domain.
package repository

import (
	"caftan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrArticleNotFound is returned when no article exists for a slug in a
// given locale partition.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository reads localized articles from locale-partitioned
// storage. Reads are synchronous local file reads, no network.
type ArticleRepository interface {
	// ListSlugs returns the slugs present under one locale partition.
	ListSlugs(locale string) ([]string, error)

	// Get returns the article stored at (slug, locale), or
	// ErrArticleNotFound. No cross-locale fallback happens here.
	Get(slug, locale string) (*entity.ContentItem, error)

	// ListAll returns every article under one locale partition,
	// unordered.
	ListAll(locale string) ([]entity.ContentItem, error)
}
