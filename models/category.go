package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	NameEn    string    `json:"name_en" gorm:"not null"`
	NameHi    string    `json:"name_hi" gorm:"not null"`
	SlugEn    string    `json:"slug_en" gorm:"uniqueIndex;not null"`
	SlugHi    string    `json:"slug_hi" gorm:"uniqueIndex;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) SlugFor(lang Language) string {
	if lang == LanguageHindi {
		return c.SlugHi
	}
	return c.SlugEn
}
