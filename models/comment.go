package models

import "time"

type Comment struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	AuthorName  string    `json:"author_name" gorm:"not null"`
	AuthorEmail *string   `json:"author_email,omitempty"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	Approved    bool      `json:"approved" gorm:"not null;default:false;index"`
	ArticleID   uint      `json:"article_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}
