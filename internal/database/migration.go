package database

import (
	"fmt"

	"miniforum/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
// Tables are created on first startup if absent.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
