package database

import (
	"fmt"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Bank{},
		&models.Client{},
		&models.Card{},
		&models.Transaction{},
		&models.Profile{},
		&models.ProfileTransaction{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
