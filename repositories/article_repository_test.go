package repositories_test

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
)

func (s *RepositorySuite) newArticle(title string, status models.ArticleStatus, authorID uint) *models.Article {
	slug := title
	return &models.Article{
		TitleEn:    strPtr(title),
		SlugEn:     &slug,
		Status:     status,
		AuthorID:   authorID,
		CategoryID: s.category.ID,
		Version:    1,
	}
}

func (s *RepositorySuite) TestArticleCreateWithTagsAndGet() {
	repo := repositories.NewArticleRepository(s.db)
	tag := models.Tag{NameEn: "Election", NameHi: "चुनाव", Slug: "election"}
	s.Require().NoError(s.db.Create(&tag).Error)

	article := s.newArticle("budget-2024", models.StatusDraft, s.reporter.ID)
	s.Require().NoError(repo.Create(article, []uint{tag.ID}))

	got, err := repo.GetByID(article.ID)
	s.Require().NoError(err)
	s.Equal("budget-2024", *got.SlugEn)
	s.Require().Len(got.Tags, 1)
	s.Equal("election", got.Tags[0].Slug)
	s.Equal(s.reporter.ID, got.Author.ID)
	s.Equal("politics", got.Category.SlugEn)
}

func (s *RepositorySuite) TestArticleCreateRejectsUnknownTag() {
	repo := repositories.NewArticleRepository(s.db)
	err := repo.Create(s.newArticle("ghost-tags", models.StatusDraft, s.reporter.ID), []uint{999})
	s.True(models.IsKind(err, models.KindInvalidRequest))

	var count int64
	s.db.Model(&models.Article{}).Count(&count)
	s.Zero(count, "article insert is rolled back")
}

func (s *RepositorySuite) TestArticleDuplicateSlugIsDuplicatedKey() {
	repo := repositories.NewArticleRepository(s.db)
	s.Require().NoError(repo.Create(s.newArticle("same-slug", models.StatusDraft, s.reporter.ID), nil))

	err := repo.Create(s.newArticle("same-slug", models.StatusDraft, s.editor.ID), nil)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *RepositorySuite) TestUpdateWithVersionGuardsConcurrentWriters() {
	repo := repositories.NewArticleRepository(s.db)
	article := s.newArticle("monsoon", models.StatusDraft, s.reporter.ID)
	s.Require().NoError(repo.Create(article, nil))

	first, err := repo.GetByID(article.ID)
	s.Require().NoError(err)
	second, err := repo.GetByID(article.ID)
	s.Require().NoError(err)

	a := first.Clone()
	a.ExcerptEn = strPtr("first writer")
	ok, err := repo.UpdateWithVersion(a, first.Version, nil)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(uint(2), a.Version)

	b := second.Clone()
	b.ExcerptEn = strPtr("second writer")
	ok, err = repo.UpdateWithVersion(b, second.Version, nil)
	s.Require().NoError(err)
	s.False(ok)

	stored, err := repo.GetByID(article.ID)
	s.Require().NoError(err)
	s.Equal("first writer", *stored.ExcerptEn)
	s.Equal(uint(2), stored.Version)
}

func (s *RepositorySuite) TestUpdateWithVersionReplacesTags() {
	repo := repositories.NewArticleRepository(s.db)
	t1 := models.Tag{NameEn: "Cricket", NameHi: "क्रिकेट", Slug: "cricket"}
	t2 := models.Tag{NameEn: "IPL", NameHi: "आईपीएल", Slug: "ipl"}
	s.Require().NoError(s.db.Create(&t1).Error)
	s.Require().NoError(s.db.Create(&t2).Error)

	article := s.newArticle("final", models.StatusDraft, s.reporter.ID)
	s.Require().NoError(repo.Create(article, []uint{t1.ID}))

	next := article.Clone()
	tagIDs := []uint{t2.ID}
	ok, err := repo.UpdateWithVersion(next, article.Version, &tagIDs)
	s.Require().NoError(err)
	s.True(ok)

	stored, err := repo.GetByID(article.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Tags, 1)
	s.Equal(t2.ID, stored.Tags[0].ID)
	s.Equal(article.Version+1, stored.Version)
}

func (s *RepositorySuite) TestDeleteWithVersion() {
	repo := repositories.NewArticleRepository(s.db)
	article := s.newArticle("to-delete", models.StatusDraft, s.reporter.ID)
	s.Require().NoError(repo.Create(article, nil))
	s.Require().NoError(s.db.Create(&models.Comment{AuthorName: "Reader", Body: "Nice", ArticleID: article.ID}).Error)

	ok, err := repo.DeleteWithVersion(article.ID, article.Version+1)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = repo.DeleteWithVersion(article.ID, article.Version)
	s.Require().NoError(err)
	s.True(ok)

	_, err = repo.GetByID(article.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestGetListScopesAndFilters() {
	repo := repositories.NewArticleRepository(s.db)
	published := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mine := s.newArticle("mine", models.StatusDraft, s.reporter.ID)
	theirs := s.newArticle("theirs", models.StatusPublished, s.editor.ID)
	theirs.PublishedAt = &published
	theirs.IsBreaking = true
	s.Require().NoError(repo.Create(mine, nil))
	s.Require().NoError(repo.Create(theirs, nil))

	params := models.ArticleListParams{Page: 1, Limit: 20}

	all, total, err := repo.GetList(repositories.ArticleListFilter{Params: params})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Len(all, 2)

	scope := s.reporter.ID
	own, total, err := repo.GetList(repositories.ArticleListFilter{Params: params, AuthorScope: &scope})
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal(mine.ID, own[0].ID)

	public, _, err := repo.GetList(repositories.ArticleListFilter{Params: params, PublishedOnly: true})
	s.Require().NoError(err)
	s.Require().Len(public, 1)
	s.Equal(theirs.ID, public[0].ID)

	breaking := true
	params.Breaking = &breaking
	flagged, _, err := repo.GetList(repositories.ArticleListFilter{Params: params})
	s.Require().NoError(err)
	s.Require().Len(flagged, 1)
	s.Equal(theirs.ID, flagged[0].ID)
}

func (s *RepositorySuite) TestGetPublishedBySlug() {
	repo := repositories.NewArticleRepository(s.db)
	draft := s.newArticle("draft-story", models.StatusDraft, s.reporter.ID)
	draft.SlugHi = strPtr("masauda")
	live := s.newArticle("live-story", models.StatusPublished, s.editor.ID)
	live.SlugHi = strPtr("samaachaara")
	s.Require().NoError(repo.Create(draft, nil))
	s.Require().NoError(repo.Create(live, nil))

	got, err := repo.GetPublishedBySlug(models.LanguageHindi, "samaachaara")
	s.Require().NoError(err)
	s.Equal(live.ID, got.ID)

	_, err = repo.GetPublishedBySlug(models.LanguageEnglish, "draft-story")
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}
