package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kaalchakra-cms/models"
	"kaalchakra-cms/workflow"
)

func TestCreateTagDerivesSlug(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo, workflow.NewAuthorizer())
	admin := workflow.Actor{ID: 2, Role: models.RoleAdmin}

	repo.On("GetBySlug", "lok-sabha-2024").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*models.Tag")).Return(nil)

	tag, err := svc.CreateTag(admin, models.CreateTagInput{NameEn: "Lok Sabha 2024", NameHi: "लोकसभा 2024"})
	require.NoError(t, err)
	assert.Equal(t, "lok-sabha-2024", tag.Slug)
}

func TestCreateTagDuplicateIsConflict(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo, workflow.NewAuthorizer())

	repo.On("GetBySlug", "cricket").Return(&models.Tag{ID: 1, Slug: "cricket"}, nil)

	_, err := svc.CreateTag(workflow.Actor{ID: 1, Role: models.RoleOwner}, models.CreateTagInput{NameEn: "Cricket", NameHi: "क्रिकेट"})
	assert.True(t, models.IsKind(err, models.KindConflict))
}

func TestCreateTagByReporterIsForbidden(t *testing.T) {
	svc := NewTagService(new(mockTagRepo), workflow.NewAuthorizer())

	_, err := svc.CreateTag(workflow.Actor{ID: 4, Role: models.RoleReporter}, models.CreateTagInput{NameEn: "X", NameHi: "X"})
	assert.True(t, models.IsKind(err, models.KindForbidden))
}
