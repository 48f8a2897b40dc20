package repositories

import (
	"gorm.io/gorm"

	"kaalchakra-cms/models"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetBySlug(slug string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	// RecountUsage sets usage_count of the given tags to the number of
	// published articles carrying them.
	RecountUsage(tagIDs []uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("usage_count desc").Order("name_en asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) RecountUsage(tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	query := `
		UPDATE tags SET usage_count = (
			SELECT COUNT(*)
			FROM article_tags at
			JOIN articles a ON a.id = at.article_id
			WHERE at.tag_id = tags.id AND a.status = ?
		)
		WHERE id IN ?
	`
	return r.db.Exec(query, models.StatusPublished, tagIDs).Error
}
