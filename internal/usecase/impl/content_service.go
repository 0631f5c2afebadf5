package impl

import (
	"sort"

	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
	"caftan/internal/domain/repository"
	"caftan/internal/usecase"

	"github.com/pkg/errors"
)

type contentService struct {
	articles      repository.ArticleRepository
	defaultLocale string
}

// NewContentService creates the localized content resolver. A slug
// missing from the requested locale resolves to the default locale's
// article in full; a locale partition that has the slug takes total
// precedence and no field-level merging between locales ever happens.
func NewContentService(articles repository.ArticleRepository, defaultLocale string) usecase.ContentUsecase {
	return &contentService{
		articles:      articles,
		defaultLocale: defaultLocale,
	}
}

func (s *contentService) ListSlugs(locale string) ([]string, error) {
	return s.articles.ListSlugs(locale)
}

func (s *contentService) GetItem(slug, locale string) (*entity.ContentItem, error) {
	item, err := s.articles.Get(slug, locale)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repository.ErrArticleNotFound) {
		return nil, err
	}

	if locale != s.defaultLocale {
		item, err = s.articles.Get(slug, s.defaultLocale)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, repository.ErrArticleNotFound) {
			return nil, err
		}
	}

	return nil, domainerrors.ErrArticleNotFound
}

func (s *contentService) ListAll(locale string) ([]entity.ContentItemMeta, error) {
	items, err := s.articles.ListAll(locale)
	if err != nil {
		return nil, err
	}

	metas := make([]entity.ContentItemMeta, 0, len(items))
	for _, item := range items {
		metas = append(metas, item.Meta())
	}
	sortByDateDesc(metas)

	return metas, nil
}

func (s *contentService) GetFeatured(locale string) ([]entity.ContentItemMeta, error) {
	all, err := s.ListAll(locale)
	if err != nil {
		return nil, err
	}

	featured := make([]entity.ContentItemMeta, 0, len(all))
	for _, meta := range all {
		if meta.Featured {
			featured = append(featured, meta)
		}
	}

	return featured, nil
}

func (s *contentService) GetRelated(slug string, limit int, locale string) ([]entity.ContentItemMeta, error) {
	item, err := s.GetItem(slug, locale)
	if err != nil {
		return nil, err
	}

	all, err := s.ListAll(locale)
	if err != nil {
		return nil, err
	}

	// Same category first, then the rest by recency.
	related := make([]entity.ContentItemMeta, 0, limit)
	for _, meta := range all {
		if meta.Slug == slug {
			continue
		}
		if meta.Category == item.Category {
			related = append(related, meta)
		}
	}
	for _, meta := range all {
		if len(related) >= limit {
			break
		}
		if meta.Slug == slug || meta.Category == item.Category {
			continue
		}
		related = append(related, meta)
	}

	if len(related) > limit {
		related = related[:limit]
	}

	return related, nil
}

func (s *contentService) ListCategories(locale string) ([]string, error) {
	all, err := s.ListAll(locale)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0, len(all))
	for _, meta := range all {
		if meta.Category == "" || seen[meta.Category] {
			continue
		}
		seen[meta.Category] = true
		categories = append(categories, meta.Category)
	}
	sort.Strings(categories)

	return categories, nil
}

// sortByDateDesc orders metas newest first. Dates are ISO strings, so
// lexicographic order is chronological; ties break on slug for a stable
// listing.
func sortByDateDesc(metas []entity.ContentItemMeta) {
	sort.SliceStable(metas, func(i, j int) bool {
		if metas[i].Date != metas[j].Date {
			return metas[i].Date > metas[j].Date
		}

		return metas[i].Slug < metas[j].Slug
	})
}
