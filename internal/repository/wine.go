package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
)

// WineFilter narrows a wine listing, conjunction semantics as DishFilter.
// Category and Origin are case-insensitive substring matches on the
// respective display names.
type WineFilter struct {
	CategoryID     *uuid.UUID
	Category       *string
	Origin         *string
	WineryID       *uuid.UUID
	Query          *string
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	Active         *bool
	IncludeDeleted bool
	OrderBy        string
	Limit          int
	Offset         int
}

// WineRepository queries wines with every association eager-loaded.
// Origin designations join with a LEFT JOIN: a wine without one must
// still come back from queries that do not filter on designation.
type WineRepository struct {
	db *gorm.DB
}

func NewWineRepository(db *gorm.DB) *WineRepository {
	return &WineRepository{db: db}
}

func (r *WineRepository) query(ctx context.Context, f WineFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Wine{}).
		Joins("JOIN wine_categories ON wine_categories.id = wines.category_id").
		Joins("LEFT JOIN origin_designations ON origin_designations.id = wines.origin_id")

	if !f.IncludeDeleted {
		q = q.Where("wines.deleted_at IS NULL")
	}
	if f.Active != nil {
		q = q.Where("wines.is_active = ?", *f.Active)
	}
	if f.CategoryID != nil {
		q = q.Where("wines.category_id = ?", *f.CategoryID)
	}
	if f.Category != nil && *f.Category != "" {
		like := "%" + strings.ToLower(*f.Category) + "%"
		q = q.Where("LOWER(wine_categories.nombre) LIKE ?", like)
	}
	if f.Origin != nil && *f.Origin != "" {
		like := "%" + strings.ToLower(*f.Origin) + "%"
		q = q.Where("LOWER(origin_designations.nombre) LIKE ?", like)
	}
	if f.WineryID != nil {
		q = q.Where("wines.winery_id = ?", *f.WineryID)
	}
	if f.Query != nil && *f.Query != "" {
		like := "%" + strings.ToLower(*f.Query) + "%"
		q = q.Where("LOWER(wines.nombre) LIKE ?", like)
	}
	if f.PriceMin != nil {
		q = q.Where("wines.precio >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("wines.precio <= ?", *f.PriceMax)
	}
	return q
}

func (r *WineRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Category").
		Preload("Winery").
		Preload("Origin").
		Preload("Oenologist").
		Preload("Grapes")
}

// List returns wines matching the filter ordered by category, origin and
// name so grouped views come out in presentation order.
func (r *WineRepository) List(ctx context.Context, f WineFilter) ([]models.Wine, error) {
	q := r.preload(r.query(ctx, f))

	switch f.OrderBy {
	case "precio":
		q = q.Order("wines.precio ASC")
	case "nombre":
		q = q.Order("wines.nombre ASC")
	default:
		// Menu presentation order: category, then origin, then name.
		q = q.Order("wine_categories.nombre ASC").
			Order("origin_designations.nombre ASC").
			Order("wines.nombre ASC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var wines []models.Wine
	if err := q.Find(&wines).Error; err != nil {
		return nil, err
	}
	return wines, nil
}

// Count returns the number of wines matching the filter, ignoring paging.
func (r *WineRepository) Count(ctx context.Context, f WineFilter) (int64, error) {
	var total int64
	if err := r.query(ctx, f).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID returns a wine with its associations, soft-deleted or not.
func (r *WineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	var wine models.Wine
	err := r.preload(r.db.WithContext(ctx)).First(&wine, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &wine, nil
}

// Create persists a wine and attaches the given grape varieties.
func (r *WineRepository) Create(ctx context.Context, wine *models.Wine, grapeIDs []uuid.UUID) (*models.Wine, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(grapeIDs) > 0 {
			var grapes []models.GrapeVariety
			if err := tx.Where("id IN ?", grapeIDs).Find(&grapes).Error; err != nil {
				return err
			}
			wine.Grapes = grapes
		}
		return tx.Create(wine).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, wine.ID)
}

// Update applies a partial update; the grape set is replaced only when
// grapeIDs is non-nil.
func (r *WineRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}, grapeIDs *[]uuid.UUID) (*models.Wine, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wine models.Wine
		if err := tx.First(&wine, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&wine).Updates(updates).Error; err != nil {
				return err
			}
		}
		if grapeIDs != nil {
			var grapes []models.GrapeVariety
			if len(*grapeIDs) > 0 {
				if err := tx.Where("id IN ?", *grapeIDs).Find(&grapes).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&wine).Association("Grapes").Replace(grapes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks a wine as deleted.
func (r *WineRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return markDeleted(r.db.WithContext(ctx), &models.Wine{}, id)
}

// Restore clears the soft-delete state of a wine.
func (r *WineRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return markRestored(r.db.WithContext(ctx), &models.Wine{}, id)
}

// ToggleActive flips the active flag without touching the deletion state.
func (r *WineRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	var wine models.Wine
	if err := r.db.WithContext(ctx).First(&wine, "id = ?", id).Error; err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Model(&wine).
		Update("is_active", !wine.IsActive).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
