// Package content reads localized articles from disk. Articles live in
// locale-partitioned directories, one JSON document per slug:
//
//	{dir}/{locale}/{slug}.json
//
// The store itself knows nothing about locale fallback; that policy
// lives in the usecase layer.
package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"caftan/internal/domain/entity"
	"caftan/internal/domain/repository"

	"github.com/pkg/errors"
)

const articleExt = ".json"

// Store implements repository.ArticleRepository over a directory tree.
type Store struct {
	dir     string
	locales map[string]struct{}
}

// NewStore creates a store rooted at dir. A non-empty locales list
// restricts reads to those partitions.
func NewStore(dir string, locales []string) *Store {
	allowed := make(map[string]struct{}, len(locales))
	for _, locale := range locales {
		allowed[locale] = struct{}{}
	}

	return &Store{dir: dir, locales: allowed}
}

// validLocale rejects locales that would walk out of the content root
// and, when an allow-list is configured, locales outside it.
func (s *Store) validLocale(locale string) bool {
	if locale != filepath.Base(locale) || strings.HasPrefix(locale, ".") {
		return false
	}
	if len(s.locales) == 0 {
		return true
	}
	_, ok := s.locales[locale]

	return ok
}

// ListSlugs returns the slugs present under one locale partition. A
// missing or unknown partition is an empty list, not an error.
func (s *Store) ListSlugs(locale string) ([]string, error) {
	if !s.validLocale(locale) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(filepath.Join(s.dir, locale))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}

		return nil, errors.Wrapf(err, "read locale partition %s", locale)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), articleExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), articleExt))
	}

	return slugs, nil
}

// Get returns the article stored at (slug, locale), or
// repository.ErrArticleNotFound.
func (s *Store) Get(slug, locale string) (*entity.ContentItem, error) {
	// Slugs and locales come from URLs; never let either walk out of
	// its partition.
	if slug != filepath.Base(slug) || strings.HasPrefix(slug, ".") {
		return nil, repository.ErrArticleNotFound
	}
	if !s.validLocale(locale) {
		return nil, repository.ErrArticleNotFound
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, locale, slug+articleExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrapf(err, "read article %s/%s", locale, slug)
	}

	var item entity.ContentItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, errors.Wrapf(err, "decode article %s/%s", locale, slug)
	}

	// The filename is the slug authority.
	item.Slug = slug

	return &item, nil
}

// ListAll returns every article under one locale partition, unordered.
func (s *Store) ListAll(locale string) ([]entity.ContentItem, error) {
	slugs, err := s.ListSlugs(locale)
	if err != nil {
		return nil, err
	}

	items := make([]entity.ContentItem, 0, len(slugs))
	for _, slug := range slugs {
		item, err := s.Get(slug, locale)
		if err != nil {
			// A file that vanished or fails to decode drops out of the
			// listing rather than breaking the whole locale.
			continue
		}
		items = append(items, *item)
	}

	return items, nil
}
