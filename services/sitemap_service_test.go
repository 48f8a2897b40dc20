package services

import (
	"context"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaalchakra-cms/cache"
	"kaalchakra-cms/models"
)

func TestSitemapListsPublishedArticlesPerLanguage(t *testing.T) {
	articles := new(mockArticleRepo)
	categories := new(mockCategoryRepo)
	politics := &models.Category{ID: 1, SlugEn: "politics", SlugHi: "rajniti"}
	updated := time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)

	articles.On("ListPublishedForSitemap").Return([]models.Article{
		{ID: 1, SlugEn: strPtr("budget-2024"), SlugHi: strPtr("bajata-2024"), Category: politics, UpdatedAt: updated},
		{ID: 2, SlugHi: strPtr("sansada"), Category: politics, UpdatedAt: updated},
	}, nil).Once()
	categories.On("GetAll").Return([]models.Category{*politics}, nil).Once()

	svc := NewSitemapService(articles, categories, cache.NewMemoryCache(time.Minute), "https://kaalchakra.news/", time.Minute)

	raw, err := svc.Sitemap(context.Background())
	require.NoError(t, err)

	var doc sitemapDocument
	require.NoError(t, xml.Unmarshal(raw, &doc))

	var locs []string
	for _, u := range doc.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		"https://kaalchakra.news/english",
		"https://kaalchakra.news/hindi",
		"https://kaalchakra.news/english/politics/budget-2024",
		"https://kaalchakra.news/hindi/rajniti/bajata-2024",
		"https://kaalchakra.news/hindi/rajniti/sansada",
		"https://kaalchakra.news/english/politics",
		"https://kaalchakra.news/hindi/rajniti",
	}, locs)
	assert.Equal(t, "2024-06-09T18:00:00Z", doc.URLs[2].LastMod)
	assert.Equal(t, "0.8", doc.URLs[2].Priority)

	again, err := svc.Sitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, again)
	articles.AssertNumberOfCalls(t, "ListPublishedForSitemap", 1)
}
