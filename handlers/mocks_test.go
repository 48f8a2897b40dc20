package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kaalchakra-cms/models"
	"kaalchakra-cms/workflow"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	r, _ := args.Get(0).(*models.AuthResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockArticleService struct{ mock.Mock }

func (m *mockArticleService) CreateArticle(actor workflow.Actor, in models.CreateArticleInput) (*models.Article, error) {
	args := m.Called(actor, in)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) GetArticle(actor workflow.Actor, id uint) (*models.Article, error) {
	args := m.Called(actor, id)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) GetArticles(actor workflow.Actor, params models.ArticleListParams) ([]models.Article, int64, error) {
	args := m.Called(actor, params)
	list, _ := args.Get(0).([]models.Article)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleService) UpdateArticle(actor workflow.Actor, id uint, in models.UpdateArticleInput) (*models.Article, error) {
	args := m.Called(actor, id, in)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) DeleteArticle(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *mockArticleService) GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	args := m.Called(params)
	list, _ := args.Get(0).([]models.Article)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleService) GetPublicArticle(lang, slug string) (*models.Article, error) {
	args := m.Called(lang, slug)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Category)
	return list, args.Error(1)
}

func (m *mockCategoryService) CreateCategory(actor workflow.Actor, in models.CategoryInput) (*models.Category, error) {
	args := m.Called(actor, in)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(actor workflow.Actor, id uint, in models.CategoryInput) (*models.Category, error) {
	args := m.Called(actor, id, in)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

type mockTagService struct{ mock.Mock }

func (m *mockTagService) CreateTag(actor workflow.Actor, in models.CreateTagInput) (*models.Tag, error) {
	args := m.Called(actor, in)
	t, _ := args.Get(0).(*models.Tag)
	return t, args.Error(1)
}

func (m *mockTagService) GetTags() ([]models.Tag, error) {
	args := m.Called()
	list, _ := args.Get(0).([]models.Tag)
	return list, args.Error(1)
}

type mockCommentService struct{ mock.Mock }

func (m *mockCommentService) SubmitComment(in models.CreateCommentInput) (*models.Comment, error) {
	args := m.Called(in)
	c, _ := args.Get(0).(*models.Comment)
	return c, args.Error(1)
}

func (m *mockCommentService) GetApprovedComments(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	list, _ := args.Get(0).([]models.Comment)
	return list, args.Error(1)
}

func (m *mockCommentService) GetComments(actor workflow.Actor, params models.CommentListParams) ([]models.Comment, int64, error) {
	args := m.Called(actor, params)
	list, _ := args.Get(0).([]models.Comment)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentService) ApproveComment(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *mockCommentService) DeleteComment(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetUsers(actor workflow.Actor, page, limit int) ([]models.User, int64, error) {
	args := m.Called(actor, page, limit)
	list, _ := args.Get(0).([]models.User)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserService) CreateUser(actor workflow.Actor, in models.CreateUserInput) (*models.User, error) {
	args := m.Called(actor, in)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateUser(actor workflow.Actor, id uint, in models.UpdateUserInput) (*models.User, error) {
	args := m.Called(actor, id, in)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) DeleteUser(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

type mockENewspaperService struct{ mock.Mock }

func (m *mockENewspaperService) CreateENewspaper(actor workflow.Actor, in models.ENewspaperInput) (*models.ENewspaper, error) {
	args := m.Called(actor, in)
	p, _ := args.Get(0).(*models.ENewspaper)
	return p, args.Error(1)
}

func (m *mockENewspaperService) GetENewspapers(lang string, page, limit int) ([]models.ENewspaper, int64, error) {
	args := m.Called(lang, page, limit)
	list, _ := args.Get(0).([]models.ENewspaper)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockENewspaperService) DeleteENewspaper(actor workflow.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

type mockSitemapService struct{ mock.Mock }

func (m *mockSitemapService) Sitemap(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}
