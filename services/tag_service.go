package services

import (
	"strings"

	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/slug"
	"kaalchakra-cms/workflow"
)

type TagService interface {
	CreateTag(actor workflow.Actor, in models.CreateTagInput) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
	authz   *workflow.Authorizer
}

func NewTagService(tagRepo repositories.TagRepository, authz *workflow.Authorizer) TagService {
	return &tagService{tagRepo: tagRepo, authz: authz}
}

func (s *tagService) CreateTag(actor workflow.Actor, in models.CreateTagInput) (*models.Tag, error) {
	if err := observe(string(workflow.ActionManageTags), s.authz.Authorize(actor, workflow.ActionManageTags)); err != nil {
		return nil, err
	}

	source := in.Slug
	if strings.TrimSpace(source) == "" {
		source = in.NameEn
	}
	tag := &models.Tag{
		NameEn: strings.TrimSpace(in.NameEn),
		NameHi: strings.TrimSpace(in.NameHi),
		Slug:   slug.Slugify(source),
	}
	if !slug.IsValid(tag.Slug) {
		return nil, models.ErrInvalidRequest("tag slug must contain letters or digits")
	}

	if _, err := s.tagRepo.GetBySlug(tag.Slug); err == nil {
		return nil, models.ErrConflict("tag %q already exists", tag.Slug)
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, translateDBError(err, "tag")
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, translateDBError(err, "tags")
	}
	return tags, nil
}
