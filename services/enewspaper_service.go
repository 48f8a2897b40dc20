package services

import (
	"strings"

	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/workflow"
)

type ENewspaperService interface {
	CreateENewspaper(actor workflow.Actor, in models.ENewspaperInput) (*models.ENewspaper, error)
	GetENewspapers(lang string, page, limit int) ([]models.ENewspaper, int64, error)
	DeleteENewspaper(actor workflow.Actor, id uint) error
}

type eNewspaperService struct {
	repo  repositories.ENewspaperRepository
	authz *workflow.Authorizer
}

func NewENewspaperService(repo repositories.ENewspaperRepository, authz *workflow.Authorizer) ENewspaperService {
	return &eNewspaperService{repo: repo, authz: authz}
}

func (s *eNewspaperService) CreateENewspaper(actor workflow.Actor, in models.ENewspaperInput) (*models.ENewspaper, error) {
	if err := observe(string(workflow.ActionManageENewspapers), s.authz.Authorize(actor, workflow.ActionManageENewspapers)); err != nil {
		return nil, err
	}
	paper := &models.ENewspaper{
		TitleEn:     strings.TrimSpace(in.TitleEn),
		TitleHi:     strings.TrimSpace(in.TitleHi),
		Language:    in.Language,
		PdfURL:      strings.TrimSpace(in.PdfURL),
		PublishDate: in.PublishDate,
	}
	if err := s.repo.Create(paper); err != nil {
		return nil, translateDBError(err, "e-newspaper")
	}
	return paper, nil
}

// GetENewspapers lists editions newest first. lang may be empty, the enum
// value, or the public path segment.
func (s *eNewspaperService) GetENewspapers(lang string, page, limit int) ([]models.ENewspaper, int64, error) {
	var filter *models.Language
	if lang != "" {
		l, ok := models.ParseLanguage(lang)
		if !ok {
			return nil, 0, models.ErrInvalidRequest("unknown language %q", lang)
		}
		filter = &l
	}
	papers, total, err := s.repo.List(filter, page, limit)
	if err != nil {
		return nil, 0, translateDBError(err, "e-newspapers")
	}
	return papers, total, nil
}

func (s *eNewspaperService) DeleteENewspaper(actor workflow.Actor, id uint) error {
	if err := observe(string(workflow.ActionManageENewspapers), s.authz.Authorize(actor, workflow.ActionManageENewspapers)); err != nil {
		return err
	}
	return translateDBError(s.repo.Delete(id), "e-newspaper")
}
