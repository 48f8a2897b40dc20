package repositories

import (
	"gorm.io/gorm"

	"kaalchakra-cms/models"
)

type ENewspaperRepository interface {
	Create(paper *models.ENewspaper) error
	List(lang *models.Language, page, limit int) ([]models.ENewspaper, int64, error)
	Delete(id uint) error
}

type eNewspaperRepository struct {
	db *gorm.DB
}

func NewENewspaperRepository(db *gorm.DB) ENewspaperRepository {
	return &eNewspaperRepository{db: db}
}

func (r *eNewspaperRepository) Create(paper *models.ENewspaper) error {
	return r.db.Create(paper).Error
}

func (r *eNewspaperRepository) List(lang *models.Language, page, limit int) ([]models.ENewspaper, int64, error) {
	var papers []models.ENewspaper
	var total int64

	query := r.db.Model(&models.ENewspaper{})
	if lang != nil {
		query = query.Where("language = ?", *lang)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("publish_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&papers).Error
	return papers, total, err
}

func (r *eNewspaperRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ENewspaper{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
