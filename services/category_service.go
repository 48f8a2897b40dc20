package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"kaalchakra-cms/cache"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/metrics"
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/slug"
	"kaalchakra-cms/workflow"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(actor workflow.Actor, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(actor workflow.Actor, id uint, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(actor workflow.Actor, id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	authz        *workflow.Authorizer
	cache        cache.Cacher
	ttl          time.Duration
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, authz *workflow.Authorizer, c cache.Cacher, ttl time.Duration) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, authz: authz, cache: c, ttl: ttl}
}

// GetCategories returns every category ordered by sort order, from cache
// when possible.
func (s *categoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	if raw, err := s.cache.Get(ctx, cache.KeyPublicCategories); err == nil {
		var categories []models.Category
		if json.Unmarshal(raw, &categories) == nil {
			metrics.ObserveCacheLookup("categories", true)
			return categories, nil
		}
	}
	metrics.ObserveCacheLookup("categories", false)

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, translateDBError(err, "categories")
	}
	if raw, err := json.Marshal(categories); err == nil {
		if err := s.cache.Set(ctx, cache.KeyPublicCategories, raw, s.ttl); err != nil {
			logger.Warn().Err(err).Msg("failed to cache categories")
		}
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(actor workflow.Actor, in models.CategoryInput) (*models.Category, error) {
	if err := observe(string(workflow.ActionManageCategories), s.authz.Authorize(actor, workflow.ActionManageCategories)); err != nil {
		return nil, err
	}
	category, err := categoryFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, translateDBError(err, "category")
	}
	invalidate(s.cache, cache.KeyPublicCategories, cache.KeySitemap)
	return category, nil
}

func (s *categoryService) UpdateCategory(actor workflow.Actor, id uint, in models.CategoryInput) (*models.Category, error) {
	if err := observe(string(workflow.ActionManageCategories), s.authz.Authorize(actor, workflow.ActionManageCategories)); err != nil {
		return nil, err
	}
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "category")
	}
	category, err := categoryFromInput(in)
	if err != nil {
		return nil, err
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, translateDBError(err, "category")
	}
	invalidate(s.cache, cache.KeyPublicCategories, cache.KeySitemap)
	return category, nil
}

func (s *categoryService) DeleteCategory(actor workflow.Actor, id uint) error {
	if err := observe(string(workflow.ActionManageCategories), s.authz.Authorize(actor, workflow.ActionManageCategories)); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return translateDBError(err, "category")
	}
	count, err := s.categoryRepo.CountArticles(id)
	if err != nil {
		return translateDBError(err, "category")
	}
	if count > 0 {
		return models.ErrConflict("category still has %d articles", count)
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return translateDBError(err, "category")
	}
	invalidate(s.cache, cache.KeyPublicCategories, cache.KeySitemap)
	return nil
}

// categoryFromInput normalises names and slugs. Category slugs are chosen
// by the desk, so a Devanagari Hindi slug is transliterated.
func categoryFromInput(in models.CategoryInput) (*models.Category, error) {
	c := &models.Category{
		NameEn:    strings.TrimSpace(in.NameEn),
		NameHi:    strings.TrimSpace(in.NameHi),
		SlugEn:    slug.Slugify(in.SlugEn),
		SlugHi:    slug.SlugifyHindi(in.SlugHi),
		SortOrder: in.SortOrder,
	}
	if c.NameEn == "" || c.NameHi == "" {
		return nil, models.ErrInvalidRequest("both category names are required")
	}
	if c.SlugEn == "" || c.SlugHi == "" {
		return nil, models.ErrInvalidRequest("category slugs must contain letters or digits")
	}
	return c, nil
}
