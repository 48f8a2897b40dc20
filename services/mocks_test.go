package services

import (
	"github.com/stretchr/testify/mock"

	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
)

type mockArticleRepo struct{ mock.Mock }

func (m *mockArticleRepo) Create(article *models.Article, tagIDs []uint) error {
	args := m.Called(article, tagIDs)
	if article.ID == 0 {
		article.ID = 100
	}
	return args.Error(0)
}

func (m *mockArticleRepo) GetByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleRepo) GetList(filter repositories.ArticleListFilter) ([]models.Article, int64, error) {
	args := m.Called(filter)
	list, _ := args.Get(0).([]models.Article)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleRepo) GetPublishedBySlug(lang models.Language, slug string) (*models.Article, error) {
	args := m.Called(lang, slug)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleRepo) UpdateWithVersion(article *models.Article, expected uint, tagIDs *[]uint) (bool, error) {
	args := m.Called(article, expected, tagIDs)
	return args.Bool(0), args.Error(1)
}

func (m *mockArticleRepo) DeleteWithVersion(id, expected uint) (bool, error) {
	args := m.Called(id, expected)
	return args.Bool(0), args.Error(1)
}

func (m *mockArticleRepo) ListPublishedForSitemap() ([]models.Article, error) {
	args := m.Called()
	list, _ := args.Get(0).([]models.Article)
	return list, args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(category *models.Category) error {
	return m.Called(category).Error(0)
}

func (m *mockCategoryRepo) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) GetAll() ([]models.Category, error) {
	args := m.Called()
	list, _ := args.Get(0).([]models.Category)
	return list, args.Error(1)
}

func (m *mockCategoryRepo) Update(category *models.Category) error {
	return m.Called(category).Error(0)
}

func (m *mockCategoryRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockCategoryRepo) CountArticles(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) Create(tag *models.Tag) error {
	return m.Called(tag).Error(0)
}

func (m *mockTagRepo) GetByID(id uint) (*models.Tag, error) {
	args := m.Called(id)
	t, _ := args.Get(0).(*models.Tag)
	return t, args.Error(1)
}

func (m *mockTagRepo) GetBySlug(slug string) (*models.Tag, error) {
	args := m.Called(slug)
	t, _ := args.Get(0).(*models.Tag)
	return t, args.Error(1)
}

func (m *mockTagRepo) GetAll() ([]models.Tag, error) {
	args := m.Called()
	list, _ := args.Get(0).([]models.Tag)
	return list, args.Error(1)
}

func (m *mockTagRepo) RecountUsage(tagIDs []uint) error {
	return m.Called(tagIDs).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	if user.ID == 0 {
		user.ID = 50
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) List(page, limit int) ([]models.User, int64, error) {
	args := m.Called(page, limit)
	list, _ := args.Get(0).([]models.User)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) CountArticles(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) GetByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*models.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepo) ListApprovedByArticle(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	list, _ := args.Get(0).([]models.Comment)
	return list, args.Error(1)
}

func (m *mockCommentRepo) List(params models.CommentListParams) ([]models.Comment, int64, error) {
	args := m.Called(params)
	list, _ := args.Get(0).([]models.Comment)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) Approve(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockCommentRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type mockENewspaperRepo struct{ mock.Mock }

func (m *mockENewspaperRepo) Create(paper *models.ENewspaper) error {
	return m.Called(paper).Error(0)
}

func (m *mockENewspaperRepo) List(lang *models.Language, page, limit int) ([]models.ENewspaper, int64, error) {
	args := m.Called(lang, page, limit)
	list, _ := args.Get(0).([]models.ENewspaper)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockENewspaperRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func strPtr(s string) *string { return &s }
