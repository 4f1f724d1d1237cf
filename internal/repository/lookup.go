package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupRepository serves the category-like reference entities (categories,
// allergens, wineries, ...). Listings exclude soft-deleted rows and come
// back in name order; creation and rename rely on the unique name index, so
// a duplicate surfaces as gorm.ErrDuplicatedKey. A soft-deleted row keeps
// its name reserved until restored or removed.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// ListInto fills dest (a pointer to a slice of a lookup model) with the
// non-deleted rows ordered by display name. A non-empty query narrows the
// result to names containing it, case-insensitively.
func (r *LookupRepository) ListInto(ctx context.Context, dest interface{}, query string) error {
	q := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("nombre ASC")
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(nombre) LIKE ?", like)
	}
	return q.Find(dest).Error
}

// GetByID fills dest with the lookup record carrying the given id,
// soft-deleted or not.
func (r *LookupRepository) GetByID(ctx context.Context, dest interface{}, id uuid.UUID) error {
	return r.db.WithContext(ctx).First(dest, "id = ?", id).Error
}

// Create persists a lookup record. Unique-name violations surface as
// gorm.ErrDuplicatedKey for the caller to map to a client error.
func (r *LookupRepository) Create(ctx context.Context, record interface{}) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update applies a partial update to the lookup record of the given model
// type. Renaming onto a taken name surfaces as gorm.ErrDuplicatedKey.
func (r *LookupRepository) Update(ctx context.Context, model interface{}, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks a lookup record as deleted, removing it from listings
// while keeping its name reserved.
func (r *LookupRepository) SoftDelete(ctx context.Context, model interface{}, id uuid.UUID) error {
	return markDeleted(r.db.WithContext(ctx), model, id)
}

// Restore clears the soft-delete state of a lookup record.
func (r *LookupRepository) Restore(ctx context.Context, model interface{}, id uuid.UUID) error {
	return markRestored(r.db.WithContext(ctx), model, id)
}
