package workflow

import (
	"strings"
	"time"

	"kaalchakra-cms/models"
	"kaalchakra-cms/slug"
)

// Authorizer makes workflow decisions. Now is the only outside input it
// reads; tests replace it.
type Authorizer struct {
	Now func() time.Time
}

func NewAuthorizer() *Authorizer {
	return &Authorizer{Now: time.Now}
}

func (a *Authorizer) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func checkActor(actor Actor) error {
	if actor.ID == 0 {
		return models.ErrUnauthenticated("authentication required")
	}
	if !actor.Role.Valid() {
		return models.ErrForbidden("unknown role %q", actor.Role)
	}
	return nil
}

// Authorize checks an action that has no per-record rules.
func (a *Authorizer) Authorize(actor Actor, action Action) error {
	if err := checkActor(actor); err != nil {
		return err
	}
	if !Can(actor.Role, action) {
		return models.ErrForbidden("%s is not allowed to %s", actor.Role, action)
	}
	return nil
}

func checkArticleScope(actor Actor, action Action, article *models.Article) error {
	switch ScopeOf(actor.Role, action) {
	case ScopeAny:
		return nil
	case ScopeOwn:
		if article.AuthorID == actor.ID {
			return nil
		}
		return models.ErrForbidden("you can only access your own articles")
	case ScopeDrafts:
		if article.Status == models.StatusDraft {
			return nil
		}
		return models.ErrForbidden("%s can only delete draft articles", actor.Role)
	}
	return models.ErrForbidden("%s is not allowed to %s", actor.Role, action)
}

// AuthorizeCreateArticle validates a new article and returns the record to
// insert, with status coercions, publish stamping and slugs applied.
func (a *Authorizer) AuthorizeCreateArticle(actor Actor, in models.CreateArticleInput) (*models.Article, error) {
	if err := a.Authorize(actor, ActionCreateArticle); err != nil {
		return nil, err
	}

	titleEn, titleHi := clean(in.TitleEn), clean(in.TitleHi)
	if titleEn == nil && titleHi == nil {
		return nil, models.ErrInvalidRequest("at least one title (English or Hindi) is required")
	}
	if in.CategoryID == 0 {
		return nil, models.ErrInvalidRequest("category is required")
	}

	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status == models.StatusArchived || !status.Valid() {
		return nil, models.ErrInvalidRequest("invalid initial status %q", status)
	}

	now := a.now()
	article := &models.Article{
		TitleEn:       titleEn,
		TitleHi:       titleHi,
		ExcerptEn:     clean(in.ExcerptEn),
		ExcerptHi:     clean(in.ExcerptHi),
		BodyEn:        clean(in.BodyEn),
		BodyHi:        clean(in.BodyHi),
		FeaturedImage: clean(in.FeaturedImage),
		Status:        status,
		IsFeatured:    in.IsFeatured,
		IsBreaking:    in.IsBreaking,
		MetaTitleEn:   clean(in.MetaTitleEn),
		MetaTitleHi:   clean(in.MetaTitleHi),
		MetaDescEn:    clean(in.MetaDescEn),
		MetaDescHi:    clean(in.MetaDescHi),
		AuthorID:      actor.ID,
		CategoryID:    in.CategoryID,
		Version:       1,
	}
	article.SlugEn = englishSlug(article.TitleEn, in.SlugEn, nil, now)
	article.SlugHi = hindiSlug(article.TitleHi, in.SlugHi, nil, now)

	applyStatusRules(actor, article, now)
	return article, nil
}

// AuthorizeReadArticle checks that actor may see the article.
func (a *Authorizer) AuthorizeReadArticle(actor Actor, article *models.Article) error {
	if err := checkActor(actor); err != nil {
		return err
	}
	return checkArticleScope(actor, ActionReadArticle, article)
}

// ArticleListScope returns the author id a listing must be restricted to,
// or nil when the actor may list every article.
func (a *Authorizer) ArticleListScope(actor Actor) (*uint, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	switch ScopeOf(actor.Role, ActionReadArticle) {
	case ScopeAny:
		return nil, nil
	case ScopeOwn:
		id := actor.ID
		return &id, nil
	}
	return nil, models.ErrForbidden("%s is not allowed to list articles", actor.Role)
}

// AuthorizeUpdateArticle merges in onto the snapshot and returns the full
// record to write back. The snapshot itself is not modified.
func (a *Authorizer) AuthorizeUpdateArticle(actor Actor, snapshot *models.Article, in models.UpdateArticleInput) (*models.Article, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := checkArticleScope(actor, ActionUpdateArticle, snapshot); err != nil {
		return nil, err
	}
	if in.Version != nil && *in.Version != snapshot.Version {
		return nil, models.ErrConflict("article was changed by someone else (version %d, now %d)", *in.Version, snapshot.Version)
	}

	now := a.now()
	result := snapshot.Clone()

	if in.TitleEn != nil {
		result.TitleEn = clean(in.TitleEn)
	}
	if in.TitleHi != nil {
		result.TitleHi = clean(in.TitleHi)
	}
	if result.TitleEn == nil && result.TitleHi == nil {
		return nil, models.ErrInvalidRequest("at least one title (English or Hindi) is required")
	}
	if in.CategoryID != nil {
		if *in.CategoryID == 0 {
			return nil, models.ErrInvalidRequest("category is required")
		}
		result.CategoryID = *in.CategoryID
	}

	setIfPresent(&result.ExcerptEn, in.ExcerptEn)
	setIfPresent(&result.ExcerptHi, in.ExcerptHi)
	setIfPresent(&result.BodyEn, in.BodyEn)
	setIfPresent(&result.BodyHi, in.BodyHi)
	setIfPresent(&result.FeaturedImage, in.FeaturedImage)
	setIfPresent(&result.MetaTitleEn, in.MetaTitleEn)
	setIfPresent(&result.MetaTitleHi, in.MetaTitleHi)
	setIfPresent(&result.MetaDescEn, in.MetaDescEn)
	setIfPresent(&result.MetaDescHi, in.MetaDescHi)
	if in.IsFeatured != nil {
		result.IsFeatured = *in.IsFeatured
	}
	if in.IsBreaking != nil {
		result.IsBreaking = *in.IsBreaking
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, models.ErrInvalidRequest("invalid status %q", *in.Status)
		}
		result.Status = *in.Status
	}

	result.SlugEn = englishSlug(result.TitleEn, in.SlugEn, snapshot.SlugEn, now)
	result.SlugHi = hindiSlug(result.TitleHi, in.SlugHi, snapshot.SlugHi, now)

	applyStatusRules(actor, result, now)
	return result, nil
}

// AuthorizeDeleteArticle checks a permanent delete against the current
// snapshot.
func (a *Authorizer) AuthorizeDeleteArticle(actor Actor, snapshot *models.Article) error {
	if err := checkActor(actor); err != nil {
		return err
	}
	if !Can(actor.Role, ActionDeleteArticle) {
		return models.ErrForbidden("%s is not allowed to delete articles", actor.Role)
	}
	return checkArticleScope(actor, ActionDeleteArticle, snapshot)
}

// applyStatusRules downgrades a publish the actor has no right to, and
// otherwise stamps the publishing editor. publishedAt records the first
// publication and is never moved once set.
func applyStatusRules(actor Actor, article *models.Article, now time.Time) {
	if article.Status != models.StatusPublished {
		return
	}
	if !Can(actor.Role, ActionPublishArticle) {
		article.Status = models.StatusPendingReview
		return
	}
	editorID := actor.ID
	article.EditorID = &editorID
	if article.PublishedAt == nil {
		t := now
		article.PublishedAt = &t
	}
}

// englishSlug returns the slug for the English edition: an explicit slug
// wins, an existing one is kept, otherwise it is derived from the title.
func englishSlug(title, requested, current *string, now time.Time) *string {
	if title == nil {
		return nil
	}
	var s string
	switch {
	case requested != nil:
		s = slug.Slugify(*requested)
	case current != nil:
		return current
	default:
		s = slug.Slugify(*title)
	}
	if s == "" && requested != nil {
		s = slug.Slugify(*title)
	}
	s = slug.OrFallback(s, "en", now)
	return &s
}

// hindiSlug is englishSlug for the Hindi edition. Requested slugs may be
// Devanagari, so they go through the transliterator as well.
func hindiSlug(title, requested, current *string, now time.Time) *string {
	if title == nil {
		return nil
	}
	var s string
	switch {
	case requested != nil:
		s = slug.SlugifyHindi(*requested)
	case current != nil:
		return current
	default:
		s = slug.SlugifyHindi(*title)
	}
	if s == "" && requested != nil {
		s = slug.SlugifyHindi(*title)
	}
	s = slug.OrFallback(s, "hi", now)
	return &s
}

// clean turns blank optional text into nil.
func clean(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func setIfPresent(dst **string, src *string) {
	if src != nil {
		*dst = clean(src)
	}
}
