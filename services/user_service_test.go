package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kaalchakra-cms/models"
	"kaalchakra-cms/workflow"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, workflow.NewAuthorizer())
	admin := workflow.Actor{ID: 2, Role: models.RoleAdmin}

	repo.On("GetByEmail", "asha@kaalchakra.news").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.CreateUser(admin, models.CreateUserInput{
		Name: "Asha", Email: "Asha@Kaalchakra.news", Password: "long-enough", Role: models.RoleReporter,
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@kaalchakra.news", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("long-enough")))
}

func TestCreateUserDuplicateEmailIsConflict(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, workflow.NewAuthorizer())

	repo.On("GetByEmail", "taken@kaalchakra.news").Return(&models.User{ID: 9}, nil)

	_, err := svc.CreateUser(workflow.Actor{ID: 1, Role: models.RoleOwner}, models.CreateUserInput{
		Name: "Taken", Email: "taken@kaalchakra.news", Password: "long-enough", Role: models.RoleEditor,
	})

	assert.True(t, models.IsKind(err, models.KindConflict))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateUserPersistsAuthorizedChange(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, workflow.NewAuthorizer())
	admin := workflow.Actor{ID: 2, Role: models.RoleAdmin}

	repo.On("GetByID", uint(10)).Return(&models.User{ID: 10, Name: "Rita", Role: models.RoleReporter}, nil)
	repo.On("Update", mock.MatchedBy(func(u *models.User) bool { return u.Role == models.RoleEditor })).Return(nil)

	role := models.RoleEditor
	user, err := svc.UpdateUser(admin, 10, models.UpdateUserInput{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, user.Role)
	repo.AssertExpectations(t)
}

func TestUpdateUserPromotionToAdminByAdminIsForbidden(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, workflow.NewAuthorizer())

	repo.On("GetByID", uint(10)).Return(&models.User{ID: 10, Role: models.RoleReporter}, nil)

	role := models.RoleAdmin
	_, err := svc.UpdateUser(workflow.Actor{ID: 2, Role: models.RoleAdmin}, 10, models.UpdateUserInput{Role: &role})

	assert.True(t, models.IsKind(err, models.KindForbidden))
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteUser(t *testing.T) {
	owner := workflow.Actor{ID: 1, Role: models.RoleOwner}

	t.Run("self", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByID", uint(1)).Return(&models.User{ID: 1, Role: models.RoleOwner}, nil)
		err := NewUserService(repo, workflow.NewAuthorizer()).DeleteUser(owner, 1)
		assert.True(t, models.IsKind(err, models.KindInvalidRequest))
	})

	t.Run("has articles", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByID", uint(5)).Return(&models.User{ID: 5, Role: models.RoleReporter}, nil)
		repo.On("CountArticles", uint(5)).Return(int64(3), nil)
		err := NewUserService(repo, workflow.NewAuthorizer()).DeleteUser(owner, 5)
		assert.True(t, models.IsKind(err, models.KindConflict))
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("ok", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByID", uint(5)).Return(&models.User{ID: 5, Role: models.RoleReporter}, nil)
		repo.On("CountArticles", uint(5)).Return(int64(0), nil)
		repo.On("Delete", uint(5)).Return(nil)
		assert.NoError(t, NewUserService(repo, workflow.NewAuthorizer()).DeleteUser(owner, 5))
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByID", uint(6)).Return(nil, gorm.ErrRecordNotFound)
		err := NewUserService(repo, workflow.NewAuthorizer()).DeleteUser(owner, 6)
		assert.True(t, models.IsKind(err, models.KindNotFound))
	})
}
