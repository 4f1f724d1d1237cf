// Package repository translates filter criteria into GORM queries and owns
// every raw query in the system. Business rules (which records are visible
// to whom) live one layer up, in internal/service.
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// markDeleted performs the soft-delete transition: is_active drops and
// deleted_at is stamped with the current time, refreshing it on repeat
// calls. Map updates are used so the false/nil values are not skipped as
// zero values.
func markDeleted(db *gorm.DB, model interface{}, id uuid.UUID) error {
	res := db.Model(model).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  false,
		"deleted_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// markRestored reverses a soft delete. Restoring an already-active record
// is a no-op beyond touching updated_at.
func markRestored(db *gorm.DB, model interface{}, id uuid.UUID) error {
	res := db.Model(model).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  true,
		"deleted_at": nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
