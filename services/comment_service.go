package services

import (
	"kaalchakra-cms/helper"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/workflow"
)

type CommentService interface {
	SubmitComment(in models.CreateCommentInput) (*models.Comment, error)
	GetApprovedComments(articleID uint) ([]models.Comment, error)
	GetComments(actor workflow.Actor, params models.CommentListParams) ([]models.Comment, int64, error)
	ApproveComment(actor workflow.Actor, id uint) error
	DeleteComment(actor workflow.Actor, id uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	authz       *workflow.Authorizer
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, authz *workflow.Authorizer) CommentService {
	return &commentService{commentRepo: commentRepo, articleRepo: articleRepo, authz: authz}
}

// SubmitComment stores a reader comment awaiting moderation. Only published
// articles accept comments.
func (s *commentService) SubmitComment(in models.CreateCommentInput) (*models.Comment, error) {
	article, err := s.articleRepo.GetByID(in.ArticleID)
	if err != nil || article.Status != models.StatusPublished {
		if err != nil && !models.IsKind(translateDBError(err, "article"), models.KindNotFound) {
			return nil, translateDBError(err, "article")
		}
		return nil, models.ErrNotFound("article not found")
	}

	comment := &models.Comment{
		AuthorName: helper.SanitizeText(in.AuthorName),
		Body:       helper.SanitizeText(in.Body),
		ArticleID:  article.ID,
	}
	if in.AuthorEmail != nil {
		email := helper.SanitizeText(*in.AuthorEmail)
		comment.AuthorEmail = &email
	}
	if comment.AuthorName == "" || comment.Body == "" {
		return nil, models.ErrInvalidRequest("name and comment are required")
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, translateDBError(err, "comment")
	}
	logger.Debug().Uint("comment_id", comment.ID).Uint("article_id", article.ID).Msg("comment queued for moderation")
	return comment, nil
}

func (s *commentService) GetApprovedComments(articleID uint) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListApprovedByArticle(articleID)
	if err != nil {
		return nil, translateDBError(err, "comments")
	}
	return comments, nil
}

func (s *commentService) GetComments(actor workflow.Actor, params models.CommentListParams) ([]models.Comment, int64, error) {
	if err := observe(string(workflow.ActionModerateComments), s.authz.Authorize(actor, workflow.ActionModerateComments)); err != nil {
		return nil, 0, err
	}
	comments, total, err := s.commentRepo.List(params)
	if err != nil {
		return nil, 0, translateDBError(err, "comments")
	}
	return comments, total, nil
}

func (s *commentService) ApproveComment(actor workflow.Actor, id uint) error {
	if err := observe(string(workflow.ActionModerateComments), s.authz.Authorize(actor, workflow.ActionModerateComments)); err != nil {
		return err
	}
	return translateDBError(s.commentRepo.Approve(id), "comment")
}

func (s *commentService) DeleteComment(actor workflow.Actor, id uint) error {
	if err := observe(string(workflow.ActionModerateComments), s.authz.Authorize(actor, workflow.ActionModerateComments)); err != nil {
		return err
	}
	return translateDBError(s.commentRepo.Delete(id), "comment")
}
