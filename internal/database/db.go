package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

// Connect opens the dev server's sqlite database and migrates the schema.
// sqlite keeps the server zero-setup; tests pass an in-memory DSN.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Account{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, err
	}
	return db, nil
}
