package repositories

import (
	"gorm.io/gorm"

	"kaalchakra-cms/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	ListApprovedByArticle(articleID uint) ([]models.Comment, error)
	List(params models.CommentListParams) ([]models.Comment, int64, error)
	Approve(id uint) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListApprovedByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ? AND approved = ?", articleID, true).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) List(params models.CommentListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	query := r.db.Model(&models.Comment{})
	if params.Approved != nil {
		query = query.Where("approved = ?", *params.Approved)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&comments).Error
	return comments, total, err
}

func (r *commentRepository) Approve(id uint) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
