package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kaalchakra-cms/logger"
	"kaalchakra-cms/models"
)

// DefaultCategories are created on first start.
var DefaultCategories = []models.Category{
	{NameEn: "Politics", NameHi: "राजनीति", SlugEn: "politics", SlugHi: "rajniti", SortOrder: 1},
	{NameEn: "India", NameHi: "भारत", SlugEn: "india", SlugHi: "bharat", SortOrder: 2},
	{NameEn: "World", NameHi: "विश्व", SlugEn: "world", SlugHi: "vishwa", SortOrder: 3},
	{NameEn: "Business", NameHi: "व्यापार", SlugEn: "business", SlugHi: "vyapar", SortOrder: 4},
	{NameEn: "Technology", NameHi: "तकनीक", SlugEn: "technology", SlugHi: "takneek", SortOrder: 5},
	{NameEn: "Sports", NameHi: "खेल", SlugEn: "sports", SlugHi: "khel", SortOrder: 6},
	{NameEn: "Entertainment", NameHi: "मनोरंजन", SlugEn: "entertainment", SlugHi: "manoranjan", SortOrder: 7},
	{NameEn: "Lifestyle", NameHi: "जीवनशैली", SlugEn: "lifestyle", SlugHi: "jeevanshaili", SortOrder: 8},
	{NameEn: "Editorial", NameHi: "सम्पादकीय", SlugEn: "editorial", SlugHi: "sampadkiya", SortOrder: 9},
	{NameEn: "Health", NameHi: "स्वास्थ्य", SlugEn: "health", SlugHi: "swasthya", SortOrder: 10},
	{NameEn: "Education", NameHi: "शिक्षा", SlugEn: "education", SlugHi: "shiksha", SortOrder: 11},
}

// Seed creates the owner account and the default categories if they are
// missing. Existing rows are left alone.
func Seed(db *gorm.DB, cfg *Config) error {
	if cfg.SeedOwnerPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedOwnerPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash owner password: %w", err)
		}
		owner := models.User{
			Name:     cfg.SeedOwnerName,
			Email:    cfg.SeedOwnerEmail,
			Password: string(hashed),
			Role:     models.RoleOwner,
		}
		res := db.Where(models.User{Email: owner.Email}).FirstOrCreate(&owner)
		if res.Error != nil {
			return fmt.Errorf("seed owner: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			logger.Info().Str("email", owner.Email).Msg("owner account created")
		}
	}

	created := 0
	for _, cat := range DefaultCategories {
		c := cat
		res := db.Where(models.Category{SlugEn: c.SlugEn}).FirstOrCreate(&c)
		if res.Error != nil {
			return fmt.Errorf("seed category %s: %w", c.SlugEn, res.Error)
		}
		created += int(res.RowsAffected)
	}
	if created > 0 {
		logger.Info().Int("count", created).Msg("default categories created")
	}
	return nil
}
