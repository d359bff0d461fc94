package database

import (
	"publications-app/internal/domain/bookmarks"
	"publications-app/internal/domain/links"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"
	"publications-app/internal/domain/references"
	"publications-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// AutoMigrate creates or updates the schema for every domain model. It is
// shared between InitDB and the test setup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},

		&publications.Publication{},
		&publications.PublicationStatus{},
		&references.Reference{},

		&bookmarks.Bookmark{},
		&links.Link{},
		&ratings.Rating{},
	)
}

func InitDB(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	// uuid defaults are generated in Go, but keep pgcrypto available for
	// manual inserts and migrations
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return err
	}

	if err := AutoMigrate(db); err != nil {
		return err
	}

	DB = db
	return nil
}
