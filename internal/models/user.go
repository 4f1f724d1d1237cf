package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrative account. Only users with IsAdmin may call the
// admin routes; regular accounts exist for future staff-facing features.
type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null" json:"is_admin"`
	Audit
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
