package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusDraft         ArticleStatus = "DRAFT"
	StatusPendingReview ArticleStatus = "PENDING_REVIEW"
	StatusPublished     ArticleStatus = "PUBLISHED"
	StatusArchived      ArticleStatus = "ARCHIVED"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Article struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	TitleEn       *string       `json:"title_en"`
	TitleHi       *string       `json:"title_hi"`
	SlugEn        *string       `json:"slug_en" gorm:"uniqueIndex"`
	SlugHi        *string       `json:"slug_hi" gorm:"uniqueIndex"`
	ExcerptEn     *string       `json:"excerpt_en" gorm:"type:varchar(300)"`
	ExcerptHi     *string       `json:"excerpt_hi" gorm:"type:varchar(300)"`
	BodyEn        *string       `json:"body_en" gorm:"type:text"`
	BodyHi        *string       `json:"body_hi" gorm:"type:text"`
	FeaturedImage *string       `json:"featured_image"`
	Status        ArticleStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	IsFeatured    bool          `json:"is_featured" gorm:"not null;default:false"`
	IsBreaking    bool          `json:"is_breaking" gorm:"not null;default:false"`
	MetaTitleEn   *string       `json:"meta_title_en" gorm:"type:varchar(70)"`
	MetaTitleHi   *string       `json:"meta_title_hi" gorm:"type:varchar(70)"`
	MetaDescEn    *string       `json:"meta_desc_en" gorm:"type:varchar(160)"`
	MetaDescHi    *string       `json:"meta_desc_hi" gorm:"type:varchar(160)"`
	PublishedAt   *time.Time    `json:"published_at"`
	AuthorID      uint          `json:"author_id" gorm:"not null;index"`
	Author        *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	EditorID      *uint         `json:"editor_id"`
	Editor        *User         `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	CategoryID    uint          `json:"category_id" gorm:"not null;index"`
	Category      *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags          []Tag         `json:"tags,omitempty" gorm:"many2many:article_tags;"`
	Comments      []Comment     `json:"comments,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Version       uint          `json:"version" gorm:"not null;default:1"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Clone returns a copy of the article's own columns. Loaded associations
// are dropped so the copy can be written back without touching them.
func (a *Article) Clone() *Article {
	c := *a
	c.Author = nil
	c.Editor = nil
	c.Category = nil
	c.Tags = nil
	c.Comments = nil
	return &c
}

// SlugFor returns the slug of the given language, if any.
func (a *Article) SlugFor(lang Language) *string {
	if lang == LanguageHindi {
		return a.SlugHi
	}
	return a.SlugEn
}
