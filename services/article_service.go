package services

import (
	"kaalchakra-cms/cache"
	"kaalchakra-cms/helper"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/metrics"
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/workflow"
)

type ArticleService interface {
	CreateArticle(actor workflow.Actor, in models.CreateArticleInput) (*models.Article, error)
	GetArticle(actor workflow.Actor, id uint) (*models.Article, error)
	GetArticles(actor workflow.Actor, params models.ArticleListParams) ([]models.Article, int64, error)
	UpdateArticle(actor workflow.Actor, id uint, in models.UpdateArticleInput) (*models.Article, error)
	DeleteArticle(actor workflow.Actor, id uint) error
	GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	GetPublicArticle(lang, slug string) (*models.Article, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	authz        *workflow.Authorizer
	cache        cache.Cacher
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	authz *workflow.Authorizer,
	c cache.Cacher,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		authz:        authz,
		cache:        c,
	}
}

func (s *articleService) CreateArticle(actor workflow.Actor, in models.CreateArticleInput) (*models.Article, error) {
	article, err := s.authz.AuthorizeCreateArticle(actor, in)
	if err := observe(string(workflow.ActionCreateArticle), err); err != nil {
		return nil, err
	}
	if err := s.checkCategory(article.CategoryID); err != nil {
		return nil, err
	}

	article.BodyEn = helper.SanitizeHTML(article.BodyEn)
	article.BodyHi = helper.SanitizeHTML(article.BodyHi)

	if err := s.articleRepo.Create(article, in.TagIDs); err != nil {
		return nil, translateDBError(err, "article")
	}

	if article.Status == models.StatusPublished {
		metrics.ArticlesPublished.WithLabelValues(string(actor.Role)).Inc()
		s.afterPublishedChange(in.TagIDs)
	}
	logger.Info().
		Uint("article_id", article.ID).
		Uint("author_id", article.AuthorID).
		Str("status", string(article.Status)).
		Msg("article created")

	return s.reload(article.ID)
}

func (s *articleService) GetArticle(actor workflow.Actor, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "article")
	}
	if err := observe(string(workflow.ActionReadArticle), s.authz.AuthorizeReadArticle(actor, article)); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticles(actor workflow.Actor, params models.ArticleListParams) ([]models.Article, int64, error) {
	scope, err := s.authz.ArticleListScope(actor)
	if err != nil {
		return nil, 0, err
	}
	articles, total, err := s.articleRepo.GetList(repositories.ArticleListFilter{
		Params:      params,
		AuthorScope: scope,
	})
	if err != nil {
		return nil, 0, translateDBError(err, "articles")
	}
	return articles, total, nil
}

// UpdateArticle authorizes against a fresh snapshot and writes the result
// only if nobody changed the article in between.
func (s *articleService) UpdateArticle(actor workflow.Actor, id uint, in models.UpdateArticleInput) (*models.Article, error) {
	snapshot, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "article")
	}

	result, err := s.authz.AuthorizeUpdateArticle(actor, snapshot, in)
	if err := observe(string(workflow.ActionUpdateArticle), err); err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID != snapshot.CategoryID {
		if err := s.checkCategory(result.CategoryID); err != nil {
			return nil, err
		}
	}
	if in.BodyEn != nil {
		result.BodyEn = helper.SanitizeHTML(result.BodyEn)
	}
	if in.BodyHi != nil {
		result.BodyHi = helper.SanitizeHTML(result.BodyHi)
	}

	ok, err := s.articleRepo.UpdateWithVersion(result, snapshot.Version, in.TagIDs)
	if err != nil {
		return nil, translateDBError(err, "article")
	}
	if !ok {
		return nil, models.ErrConflict("article was changed by someone else, reload and try again")
	}

	if result.Status == models.StatusPublished && snapshot.Status != models.StatusPublished {
		metrics.ArticlesPublished.WithLabelValues(string(actor.Role)).Inc()
	}
	if result.Status == models.StatusPublished || snapshot.Status == models.StatusPublished {
		tagIDs := tagIDsOf(snapshot.Tags)
		if in.TagIDs != nil {
			tagIDs = append(tagIDs, *in.TagIDs...)
		}
		s.afterPublishedChange(tagIDs)
	}
	logger.Info().
		Uint("article_id", id).
		Uint("actor_id", actor.ID).
		Str("from", string(snapshot.Status)).
		Str("to", string(result.Status)).
		Uint("version", result.Version).
		Msg("article updated")

	return s.reload(id)
}

func (s *articleService) DeleteArticle(actor workflow.Actor, id uint) error {
	snapshot, err := s.articleRepo.GetByID(id)
	if err != nil {
		return translateDBError(err, "article")
	}
	if err := observe(string(workflow.ActionDeleteArticle), s.authz.AuthorizeDeleteArticle(actor, snapshot)); err != nil {
		return err
	}

	ok, err := s.articleRepo.DeleteWithVersion(id, snapshot.Version)
	if err != nil {
		return translateDBError(err, "article")
	}
	if !ok {
		return models.ErrConflict("article was changed by someone else, reload and try again")
	}

	if snapshot.Status == models.StatusPublished {
		s.afterPublishedChange(tagIDsOf(snapshot.Tags))
	}
	logger.Info().Uint("article_id", id).Uint("actor_id", actor.ID).Msg("article deleted")
	return nil
}

func (s *articleService) GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	articles, total, err := s.articleRepo.GetList(repositories.ArticleListFilter{
		Params:        params,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, 0, translateDBError(err, "articles")
	}
	return articles, total, nil
}

func (s *articleService) GetPublicArticle(lang, slug string) (*models.Article, error) {
	language, ok := models.ParseLanguage(lang)
	if !ok {
		return nil, models.ErrInvalidRequest("unknown language %q", lang)
	}
	article, err := s.articleRepo.GetPublishedBySlug(language, slug)
	if err != nil {
		return nil, translateDBError(err, "article")
	}
	return article, nil
}

func (s *articleService) checkCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if models.IsKind(translateDBError(err, "category"), models.KindNotFound) {
			return models.ErrInvalidRequest("category %d does not exist", id)
		}
		return translateDBError(err, "category")
	}
	return nil
}

func (s *articleService) reload(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "article")
	}
	return article, nil
}

// afterPublishedChange refreshes what depends on the set of published
// articles: tag usage counts and the sitemap.
func (s *articleService) afterPublishedChange(tagIDs []uint) {
	if err := s.tagRepo.RecountUsage(dedupe(tagIDs)); err != nil {
		logger.Warn().Err(err).Msg("failed to recount tag usage")
	}
	invalidate(s.cache, cache.KeySitemap)
}

func tagIDsOf(tags []models.Tag) []uint {
	ids := make([]uint, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
