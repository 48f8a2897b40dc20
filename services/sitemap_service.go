package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"kaalchakra-cms/cache"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/metrics"
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapDocument struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type SitemapService interface {
	// Sitemap returns the sitemap XML of the public site.
	Sitemap(ctx context.Context) ([]byte, error)
}

type sitemapService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	cache        cache.Cacher
	siteURL      string
	ttl          time.Duration
	now          func() time.Time
}

func NewSitemapService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	c cache.Cacher,
	siteURL string,
	ttl time.Duration,
) SitemapService {
	return &sitemapService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		cache:        c,
		siteURL:      strings.TrimRight(siteURL, "/"),
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *sitemapService) Sitemap(ctx context.Context) ([]byte, error) {
	if raw, err := s.cache.Get(ctx, cache.KeySitemap); err == nil {
		metrics.ObserveCacheLookup("sitemap", true)
		return raw, nil
	}
	metrics.ObserveCacheLookup("sitemap", false)

	raw, err := s.build()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cache.KeySitemap, raw, s.ttl); err != nil {
		logger.Warn().Err(err).Msg("failed to cache sitemap")
	}
	return raw, nil
}

// build lists both language home pages, every published article under its
// category in each language it has a slug for, and every category.
func (s *sitemapService) build() ([]byte, error) {
	articles, err := s.articleRepo.ListPublishedForSitemap()
	if err != nil {
		return nil, translateDBError(err, "articles")
	}
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, translateDBError(err, "categories")
	}

	now := s.now().UTC().Format(time.RFC3339)
	doc := sitemapDocument{XMLNS: sitemapNamespace}
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageHindi} {
		doc.URLs = append(doc.URLs, sitemapURL{
			Loc:        s.siteURL + "/" + lang.PathSegment(),
			LastMod:    now,
			ChangeFreq: "hourly",
			Priority:   "1.0",
		})
	}

	for _, a := range articles {
		if a.Category == nil {
			continue
		}
		lastMod := a.UpdatedAt.UTC().Format(time.RFC3339)
		for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageHindi} {
			articleSlug, categorySlug := a.SlugFor(lang), a.Category.SlugFor(lang)
			if articleSlug == nil || categorySlug == "" {
				continue
			}
			doc.URLs = append(doc.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/%s/%s/%s", s.siteURL, lang.PathSegment(), categorySlug, *articleSlug),
				LastMod:    lastMod,
				ChangeFreq: "daily",
				Priority:   "0.8",
			})
		}
	}

	for _, c := range categories {
		for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageHindi} {
			doc.URLs = append(doc.URLs, sitemapURL{
				Loc:        s.siteURL + "/" + lang.PathSegment() + "/" + c.SlugFor(lang),
				ChangeFreq: "daily",
				Priority:   "0.6",
			})
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
