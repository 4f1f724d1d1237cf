package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
)

// DishFilter narrows a dish listing. Every field is optional; provided
// fields combine with AND. Category is a case-insensitive substring match
// on the category display name, Query on the dish name.
type DishFilter struct {
	CategoryID     *uuid.UUID
	Category       *string
	Query          *string
	Suggestions    *bool
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	Active         *bool
	IncludeDeleted bool
	OrderBy        string // "nombre" (default) or "precio", always ascending
	Limit          int
	Offset         int
}

// DishRepository translates filter criteria into storage queries. Results
// always carry the category and allergen associations so callers never
// need a second round-trip.
type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) query(ctx context.Context, f DishFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Dish{}).
		Joins("JOIN dish_categories ON dish_categories.id = dishes.category_id")

	if !f.IncludeDeleted {
		q = q.Where("dishes.deleted_at IS NULL")
	}
	if f.Active != nil {
		q = q.Where("dishes.is_active = ?", *f.Active)
	}
	if f.CategoryID != nil {
		q = q.Where("dishes.category_id = ?", *f.CategoryID)
	}
	if f.Category != nil && *f.Category != "" {
		like := "%" + strings.ToLower(*f.Category) + "%"
		q = q.Where("LOWER(dish_categories.nombre) LIKE ?", like)
	}
	if f.Query != nil && *f.Query != "" {
		like := "%" + strings.ToLower(*f.Query) + "%"
		q = q.Where("LOWER(dishes.nombre) LIKE ?", like)
	}
	if f.Suggestions != nil {
		q = q.Where("dishes.sugerencias = ?", *f.Suggestions)
	}
	if f.PriceMin != nil {
		q = q.Where("dishes.precio >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("dishes.precio <= ?", *f.PriceMax)
	}
	return q
}

// List returns dishes matching the filter in a pinned ascending order.
func (r *DishRepository) List(ctx context.Context, f DishFilter) ([]models.Dish, error) {
	q := r.query(ctx, f).Preload("Category").Preload("Allergens")

	if f.OrderBy == "precio" {
		q = q.Order("dishes.precio ASC")
	} else {
		q = q.Order("dishes.nombre ASC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var dishes []models.Dish
	if err := q.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// Count returns the number of dishes matching the filter, ignoring paging.
func (r *DishRepository) Count(ctx context.Context, f DishFilter) (int64, error) {
	var total int64
	if err := r.query(ctx, f).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID returns a dish with its associations. Soft-deleted dishes are
// returned as well; visibility is the service layer's concern.
func (r *DishRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Allergens").
		First(&dish, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// Create persists a dish and attaches the given allergens.
func (r *DishRepository) Create(ctx context.Context, dish *models.Dish, allergenIDs []uuid.UUID) (*models.Dish, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(allergenIDs) > 0 {
			var allergens []models.Allergen
			if err := tx.Where("id IN ?", allergenIDs).Find(&allergens).Error; err != nil {
				return err
			}
			dish.Allergens = allergens
		}
		return tx.Create(dish).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, dish.ID)
}

// Update applies a partial update. Only the supplied columns change; the
// allergen set is replaced only when allergenIDs is non-nil.
func (r *DishRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}, allergenIDs *[]uuid.UUID) (*models.Dish, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dish models.Dish
		if err := tx.First(&dish, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&dish).Updates(updates).Error; err != nil {
				return err
			}
		}
		if allergenIDs != nil {
			var allergens []models.Allergen
			if len(*allergenIDs) > 0 {
				if err := tx.Where("id IN ?", *allergenIDs).Find(&allergens).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&dish).Association("Allergens").Replace(allergens); err != nil {
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

// SoftDelete marks a dish as deleted. Repeating the call refreshes the
// deletion timestamp.
func (r *DishRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return markDeleted(r.db.WithContext(ctx), &models.Dish{}, id)
}

// Restore clears the soft-delete state of a dish.
func (r *DishRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return markRestored(r.db.WithContext(ctx), &models.Dish{}, id)
}

// ToggleActive flips the active flag without touching the deletion state.
func (r *DishRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, "id = ?", id).Error; err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Model(&dish).
		Update("is_active", !dish.IsActive).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
