package models

import "time"

// Audit carries the audit and state-control columns shared by the menu
// entities. "Inactive" and "soft deleted" are distinct states: an inactive
// record is temporarily hidden from the public menu, a soft-deleted record
// additionally carries a deletion timestamp and is excluded from default
// queries until restored.
type Audit struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// SoftDelete marks the record as logically deleted and hides it from the
// public menu. Calling it on an already-deleted record refreshes the
// deletion timestamp; restorability is unaffected.
func (a *Audit) SoftDelete(now time.Time) {
	a.IsActive = false
	a.DeletedAt = &now
}

// Restore clears the soft-delete state. No-op on an active record.
func (a *Audit) Restore() {
	a.IsActive = true
	a.DeletedAt = nil
}

// IsDeleted reports whether the record is soft deleted.
func (a *Audit) IsDeleted() bool {
	return a.DeletedAt != nil
}
