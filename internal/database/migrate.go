package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
)

// Migrate creates or updates the schema for every menu entity. Reference
// tables are migrated before the entities that point at them so foreign
// keys resolve on a fresh database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.DishCategory{},
		&models.Allergen{},
		&models.WineCategory{},
		&models.Winery{},
		&models.OriginDesignation{},
		&models.Oenologist{},
		&models.GrapeVariety{},
		&models.Dish{},
		&models.Wine{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
