package models

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateArticleInput is the shape-validated body of an article create.
// At least one title is required; that rule is enforced by the workflow
// authorizer because it spans two fields.
type CreateArticleInput struct {
	TitleEn       *string       `json:"title_en" binding:"omitempty,max=255"`
	TitleHi       *string       `json:"title_hi" binding:"omitempty,max=255"`
	SlugEn        *string       `json:"slug_en" binding:"omitempty,max=255"`
	SlugHi        *string       `json:"slug_hi" binding:"omitempty,max=255"`
	ExcerptEn     *string       `json:"excerpt_en" binding:"omitempty,max=300"`
	ExcerptHi     *string       `json:"excerpt_hi" binding:"omitempty,max=300"`
	BodyEn        *string       `json:"body_en"`
	BodyHi        *string       `json:"body_hi"`
	FeaturedImage *string       `json:"featured_image" binding:"omitempty,url"`
	CategoryID    uint          `json:"category_id"`
	TagIDs        []uint        `json:"tag_ids"`
	IsFeatured    bool          `json:"is_featured"`
	IsBreaking    bool          `json:"is_breaking"`
	MetaTitleEn   *string       `json:"meta_title_en" binding:"omitempty,max=70"`
	MetaTitleHi   *string       `json:"meta_title_hi" binding:"omitempty,max=70"`
	MetaDescEn    *string       `json:"meta_desc_en" binding:"omitempty,max=160"`
	MetaDescHi    *string       `json:"meta_desc_hi" binding:"omitempty,max=160"`
	Status        ArticleStatus `json:"status" binding:"omitempty,oneof=DRAFT PENDING_REVIEW PUBLISHED"`
}

// UpdateArticleInput is a partial update; nil fields are left untouched.
// Version, when sent, must match the stored version.
type UpdateArticleInput struct {
	TitleEn       *string        `json:"title_en" binding:"omitempty,max=255"`
	TitleHi       *string        `json:"title_hi" binding:"omitempty,max=255"`
	SlugEn        *string        `json:"slug_en" binding:"omitempty,max=255"`
	SlugHi        *string        `json:"slug_hi" binding:"omitempty,max=255"`
	ExcerptEn     *string        `json:"excerpt_en" binding:"omitempty,max=300"`
	ExcerptHi     *string        `json:"excerpt_hi" binding:"omitempty,max=300"`
	BodyEn        *string        `json:"body_en"`
	BodyHi        *string        `json:"body_hi"`
	FeaturedImage *string        `json:"featured_image" binding:"omitempty,url"`
	CategoryID    *uint          `json:"category_id"`
	TagIDs        *[]uint        `json:"tag_ids"`
	IsFeatured    *bool          `json:"is_featured"`
	IsBreaking    *bool          `json:"is_breaking"`
	MetaTitleEn   *string        `json:"meta_title_en" binding:"omitempty,max=70"`
	MetaTitleHi   *string        `json:"meta_title_hi" binding:"omitempty,max=70"`
	MetaDescEn    *string        `json:"meta_desc_en" binding:"omitempty,max=160"`
	MetaDescHi    *string        `json:"meta_desc_hi" binding:"omitempty,max=160"`
	Status        *ArticleStatus `json:"status" binding:"omitempty,oneof=DRAFT PENDING_REVIEW PUBLISHED ARCHIVED"`
	Version       *uint          `json:"version"`
}

type CreateUserInput struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     UserRole `json:"role" binding:"required,oneof=OWNER ADMIN EDITOR REPORTER"`
}

type UpdateUserInput struct {
	Name *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Role *UserRole `json:"role" binding:"omitempty,oneof=OWNER ADMIN EDITOR REPORTER"`
}

type CategoryInput struct {
	NameEn    string `json:"name_en" binding:"required,max=100"`
	NameHi    string `json:"name_hi" binding:"required,max=100"`
	SlugEn    string `json:"slug_en" binding:"required,max=100"`
	SlugHi    string `json:"slug_hi" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
}

type CreateTagInput struct {
	NameEn string `json:"name_en" binding:"required,min=1,max=100"`
	NameHi string `json:"name_hi" binding:"required,min=1,max=100"`
	Slug   string `json:"slug" binding:"omitempty,max=100"`
}

type CreateCommentInput struct {
	AuthorName  string  `json:"author_name" binding:"required,min=1,max=100"`
	AuthorEmail *string `json:"author_email" binding:"omitempty,email"`
	Body        string  `json:"body" binding:"required,min=1,max=2000"`
	ArticleID   uint    `json:"article_id" binding:"required"`
}

type ENewspaperInput struct {
	TitleEn     string    `json:"title_en" binding:"required,max=255"`
	TitleHi     string    `json:"title_hi" binding:"required,max=255"`
	Language    Language  `json:"language" binding:"required,oneof=HINDI ENGLISH"`
	PdfURL      string    `json:"pdf_url" binding:"required,url"`
	PublishDate time.Time `json:"publish_date" binding:"required"`
}

type ArticleListParams struct {
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT PENDING_REVIEW PUBLISHED ARCHIVED"`
	CategoryID uint   `form:"category_id"`
	AuthorID   uint   `form:"author_id"`
	TagID      uint   `form:"tag_id"`
	Featured   *bool  `form:"featured"`
	Breaking   *bool  `form:"breaking"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
	SortBy     string `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at updated_at published_at"`
	SortOrder  string `form:"sort_order,default=desc" binding:"omitempty,oneof=asc desc"`
}

type CommentListParams struct {
	Approved *bool `form:"approved"`
	Page     int   `form:"page,default=1" binding:"min=1"`
	Limit    int   `form:"limit,default=20" binding:"min=1,max=100"`
}
