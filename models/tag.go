package models

import (
	"time"
)

type Tag struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	NameEn     string    `json:"name_en" gorm:"not null"`
	NameHi     string    `json:"name_hi" gorm:"not null"`
	Slug       string    `json:"slug" gorm:"uniqueIndex;not null"`
	UsageCount int       `json:"usage_count" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
