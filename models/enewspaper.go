package models

import "time"

type Language string

const (
	LanguageHindi   Language = "HINDI"
	LanguageEnglish Language = "ENGLISH"
)

// ParseLanguage accepts the enum value or the lowercase path segment used
// by the public site ("hindi", "english").
func ParseLanguage(s string) (Language, bool) {
	switch s {
	case "HINDI", "hindi":
		return LanguageHindi, true
	case "ENGLISH", "english":
		return LanguageEnglish, true
	}
	return "", false
}

// PathSegment is the language as it appears in public URLs.
func (l Language) PathSegment() string {
	if l == LanguageHindi {
		return "hindi"
	}
	return "english"
}

// ENewspaper is one day's PDF edition.
type ENewspaper struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	TitleEn     string    `json:"title_en" gorm:"not null"`
	TitleHi     string    `json:"title_hi" gorm:"not null"`
	Language    Language  `json:"language" gorm:"type:varchar(10);not null;index"`
	PdfURL      string    `json:"pdf_url" gorm:"not null"`
	PublishDate time.Time `json:"publish_date" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}
