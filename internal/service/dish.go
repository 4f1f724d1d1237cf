package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
	"github.com/lacarta/backend/internal/repository"
)

// ErrInvalidInput marks construction-time validation failures that the
// route layer should report as client errors.
var ErrInvalidInput = errors.New("invalid input")

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// CreateDishInput is the typed constructor payload for a dish. Required
// fields are checked up front rather than at first use.
type CreateDishInput struct {
	Nombre       string
	Precio       decimal.Decimal
	Descripcion  *string
	PrecioUnidad *string
	Sugerencias  bool
	CategoryID   uuid.UUID
	AllergenIDs  []uuid.UUID
}

func (in CreateDishInput) validate() error {
	if in.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrInvalidInput)
	}
	if in.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: categoria_id is required", ErrInvalidInput)
	}
	if in.Precio.IsNegative() {
		return fmt.Errorf("%w: precio must not be negative", ErrInvalidInput)
	}
	return nil
}

// UpdateDishInput is a partial update: nil fields are left untouched.
type UpdateDishInput struct {
	Nombre       *string
	Precio       *decimal.Decimal
	Descripcion  *string
	PrecioUnidad *string
	Sugerencias  *bool
	CategoryID   *uuid.UUID
	AllergenIDs  *[]uuid.UUID
}

func (in UpdateDishInput) updates() (map[string]interface{}, error) {
	u := make(map[string]interface{})
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre must not be empty", ErrInvalidInput)
		}
		u["nombre"] = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: precio must not be negative", ErrInvalidInput)
		}
		u["precio"] = *in.Precio
	}
	if in.Descripcion != nil {
		u["descripcion"] = *in.Descripcion
	}
	if in.PrecioUnidad != nil {
		u["precio_unidad"] = *in.PrecioUnidad
	}
	if in.Sugerencias != nil {
		u["sugerencias"] = *in.Sugerencias
	}
	if in.CategoryID != nil {
		u["category_id"] = *in.CategoryID
	}
	return u, nil
}

// DishListQuery carries the admin listing filters and paging.
type DishListQuery struct {
	CategoryID      *uuid.UUID
	Query           *string
	IncludeInactive bool
	IncludeDeleted  bool
	OrderBy         string
	Limit           int
	Offset          int
}

// DishService orchestrates the administrative dish operations.
type DishService struct {
	repo *repository.DishRepository
}

func NewDishService(repo *repository.DishRepository) *DishService {
	return &DishService{repo: repo}
}

// List returns dishes for administration together with the unpaged total.
func (s *DishService) List(ctx context.Context, q DishListQuery) ([]models.Dish, int64, error) {
	f := repository.DishFilter{
		CategoryID:     q.CategoryID,
		Query:          q.Query,
		IncludeDeleted: q.IncludeDeleted,
		OrderBy:        q.OrderBy,
		Limit:          clampLimit(q.Limit),
		Offset:         q.Offset,
	}
	if !q.IncludeInactive {
		active := true
		f.Active = &active
	}
	dishes, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return dishes, total, nil
}

// Get returns a single dish, soft-deleted or not.
func (s *DishService) Get(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublic returns a dish for the public detail view. Hidden and
// soft-deleted dishes read as missing.
func (s *DishService) GetPublic(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish.IsDeleted() || !dish.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return dish, nil
}

// Create validates and persists a new dish. New dishes start active.
func (s *DishService) Create(ctx context.Context, in CreateDishInput) (*models.Dish, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	dish := &models.Dish{
		Nombre:       in.Nombre,
		Precio:       in.Precio,
		Descripcion:  in.Descripcion,
		PrecioUnidad: in.PrecioUnidad,
		Sugerencias:  in.Sugerencias,
		CategoryID:   in.CategoryID,
		Audit:        models.Audit{IsActive: true},
	}
	return s.repo.Create(ctx, dish, in.AllergenIDs)
}

// Update applies a partial update to an existing dish.
func (s *DishService) Update(ctx context.Context, id uuid.UUID, in UpdateDishInput) (*models.Dish, error) {
	updates, err := in.updates()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, updates, in.AllergenIDs)
}

// SoftDelete hides the dish from public listings, keeping it restorable.
func (s *DishService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore brings a soft-deleted dish back.
func (s *DishService) Restore(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ToggleActive flips temporary visibility without deleting.
func (s *DishService) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	return s.repo.ToggleActive(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
