package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kaalchakra-cms/models"
)

// errStaleVersion rolls back a guarded write whose version check failed.
var errStaleVersion = errors.New("stale article version")

// ArticleListFilter narrows GetList. AuthorScope, when set, restricts the
// listing to one author regardless of params.AuthorID.
type ArticleListFilter struct {
	Params        models.ArticleListParams
	AuthorScope   *uint
	PublishedOnly bool
}

type ArticleRepository interface {
	Create(article *models.Article, tagIDs []uint) error
	GetByID(id uint) (*models.Article, error)
	GetList(filter ArticleListFilter) ([]models.Article, int64, error)
	GetPublishedBySlug(lang models.Language, slug string) (*models.Article, error)
	// UpdateWithVersion writes article only if the stored version still
	// equals expected, bumping it. ok is false when another writer won.
	UpdateWithVersion(article *models.Article, expected uint, tagIDs *[]uint) (ok bool, err error)
	DeleteWithVersion(id, expected uint) (ok bool, err error)
	ListPublishedForSitemap() ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(article).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		tags, err := findTags(tx, tagIDs)
		if err != nil {
			return err
		}
		if err := tx.Model(article).Association("Tags").Replace(tags); err != nil {
			return err
		}
		article.Tags = tags
		return nil
	})
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Editor").
		Preload("Category").
		Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(filter ArticleListFilter) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64
	params := filter.Params

	query := r.db.Model(&models.Article{})

	if filter.PublishedOnly {
		query = query.Where("articles.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if filter.AuthorScope != nil {
		query = query.Where("articles.author_id = ?", *filter.AuthorScope)
	} else if params.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", params.AuthorID)
	}

	if params.CategoryID > 0 {
		query = query.Where("articles.category_id = ?", params.CategoryID)
	}
	if params.Featured != nil {
		query = query.Where("articles.is_featured = ?", *params.Featured)
	}
	if params.Breaking != nil {
		query = query.Where("articles.is_breaking = ?", *params.Breaking)
	}
	if params.TagID > 0 {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Where("article_tags.tag_id = ?", params.TagID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	page, limit := params.Page, params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	err := query.Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order(fmt.Sprintf("articles.%s %s NULLS LAST", sortBy, sortOrder)).
		Order("articles.id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) GetPublishedBySlug(lang models.Language, slug string) (*models.Article, error) {
	column := "slug_en"
	if lang == models.LanguageHindi {
		column = "slug_hi"
	}

	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where(column+" = ? AND status = ?", slug, models.StatusPublished).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) UpdateWithVersion(article *models.Article, expected uint, tagIDs *[]uint) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		article.Version = expected + 1
		res := tx.Model(article).
			Where("version = ?", expected).
			Select("*").
			Omit("ID", "CreatedAt", clause.Associations).
			Updates(article)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleVersion
		}

		if tagIDs == nil {
			return nil
		}
		tags, err := findTags(tx, *tagIDs)
		if err != nil {
			return err
		}
		if err := tx.Model(article).Association("Tags").Replace(tags); err != nil {
			return err
		}
		article.Tags = tags
		return nil
	})
	if errors.Is(err, errStaleVersion) {
		article.Version = expected
		return false, nil
	}
	return err == nil, err
}

func (r *articleRepository) DeleteWithVersion(id, expected uint) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM article_tags WHERE article_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND version = ?", id, expected).Delete(&models.Article{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleVersion
		}
		return nil
	})
	if errors.Is(err, errStaleVersion) {
		return false, nil
	}
	return err == nil, err
}

func (r *articleRepository) ListPublishedForSitemap() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Select("id", "slug_en", "slug_hi", "category_id", "updated_at", "published_at").
		Preload("Category").
		Where("status = ?", models.StatusPublished).
		Order("published_at desc").
		Find(&articles).Error
	return articles, err
}

// findTags loads the given tags and fails when any id is unknown.
func findTags(tx *gorm.DB, ids []uint) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, models.ErrInvalidRequest("one or more tags do not exist")
	}
	return tags, nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
