package repositories_test

import (
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
)

func (s *RepositorySuite) TestRecountUsageCountsPublishedOnly() {
	articles := repositories.NewArticleRepository(s.db)
	tags := repositories.NewTagRepository(s.db)

	tag := models.Tag{NameEn: "Economy", NameHi: "अर्थव्यवस्था", Slug: "economy"}
	s.Require().NoError(tags.Create(&tag))

	s.Require().NoError(articles.Create(s.newArticle("a", models.StatusPublished, s.editor.ID), []uint{tag.ID}))
	s.Require().NoError(articles.Create(s.newArticle("b", models.StatusPublished, s.editor.ID), []uint{tag.ID}))
	s.Require().NoError(articles.Create(s.newArticle("c", models.StatusDraft, s.reporter.ID), []uint{tag.ID}))

	s.Require().NoError(tags.RecountUsage([]uint{tag.ID}))

	got, err := tags.GetBySlug("economy")
	s.Require().NoError(err)
	s.Equal(2, got.UsageCount)
}

func (s *RepositorySuite) TestCommentModeration() {
	articles := repositories.NewArticleRepository(s.db)
	comments := repositories.NewCommentRepository(s.db)

	article := s.newArticle("commented", models.StatusPublished, s.editor.ID)
	s.Require().NoError(articles.Create(article, nil))

	c := models.Comment{AuthorName: "Reader", Body: "Well written", ArticleID: article.ID}
	s.Require().NoError(comments.Create(&c))
	s.False(c.Approved)

	visible, err := comments.ListApprovedByArticle(article.ID)
	s.Require().NoError(err)
	s.Empty(visible)

	s.Require().NoError(comments.Approve(c.ID))
	visible, err = comments.ListApprovedByArticle(article.ID)
	s.Require().NoError(err)
	s.Len(visible, 1)

	s.Error(comments.Approve(9999))
}
