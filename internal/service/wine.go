package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
	"github.com/lacarta/backend/internal/repository"
)

// CreateWineInput is the typed constructor payload for a wine. Winery,
// origin designation and oenologist are optional references.
type CreateWineInput struct {
	Nombre       string
	Precio       decimal.Decimal
	PrecioUnidad *string
	CategoryID   uuid.UUID
	WineryID     *uuid.UUID
	OriginID     *uuid.UUID
	OenologistID *uuid.UUID
	GrapeIDs     []uuid.UUID
}

func (in CreateWineInput) validate() error {
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

// UpdateWineInput is a partial update: nil fields are left untouched.
type UpdateWineInput struct {
	Nombre       *string
	Precio       *decimal.Decimal
	PrecioUnidad *string
	CategoryID   *uuid.UUID
	WineryID     *uuid.UUID
	OriginID     *uuid.UUID
	OenologistID *uuid.UUID
	GrapeIDs     *[]uuid.UUID
}

func (in UpdateWineInput) updates() (map[string]interface{}, error) {
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
	if in.PrecioUnidad != nil {
		u["precio_unidad"] = *in.PrecioUnidad
	}
	if in.CategoryID != nil {
		u["category_id"] = *in.CategoryID
	}
	if in.WineryID != nil {
		u["winery_id"] = *in.WineryID
	}
	if in.OriginID != nil {
		u["origin_id"] = *in.OriginID
	}
	if in.OenologistID != nil {
		u["oenologist_id"] = *in.OenologistID
	}
	return u, nil
}

// WineListQuery carries the admin listing filters and paging.
type WineListQuery struct {
	CategoryID      *uuid.UUID
	WineryID        *uuid.UUID
	Query           *string
	IncludeInactive bool
	IncludeDeleted  bool
	OrderBy         string
	Limit           int
	Offset          int
}

// WineService orchestrates the administrative wine operations.
type WineService struct {
	repo *repository.WineRepository
}

func NewWineService(repo *repository.WineRepository) *WineService {
	return &WineService{repo: repo}
}

// List returns wines for administration together with the unpaged total.
func (s *WineService) List(ctx context.Context, q WineListQuery) ([]models.Wine, int64, error) {
	f := repository.WineFilter{
		CategoryID:     q.CategoryID,
		WineryID:       q.WineryID,
		Query:          q.Query,
		IncludeDeleted: q.IncludeDeleted,
		OrderBy:        q.OrderBy,
		Limit:          clampLimit(q.Limit),
		Offset:         q.Offset,
	}
	if f.OrderBy == "" {
		f.OrderBy = "nombre"
	}
	if !q.IncludeInactive {
		active := true
		f.Active = &active
	}
	wines, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return wines, total, nil
}

// Get returns a single wine, soft-deleted or not.
func (s *WineService) Get(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublic returns a wine for the public detail view. Hidden and
// soft-deleted wines read as missing.
func (s *WineService) GetPublic(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	wine, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wine.IsDeleted() || !wine.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return wine, nil
}

// Create validates and persists a new wine. New wines start active.
func (s *WineService) Create(ctx context.Context, in CreateWineInput) (*models.Wine, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	wine := &models.Wine{
		Nombre:       in.Nombre,
		Precio:       in.Precio,
		PrecioUnidad: in.PrecioUnidad,
		CategoryID:   in.CategoryID,
		WineryID:     in.WineryID,
		OriginID:     in.OriginID,
		OenologistID: in.OenologistID,
		Audit:        models.Audit{IsActive: true},
	}
	return s.repo.Create(ctx, wine, in.GrapeIDs)
}

// Update applies a partial update to an existing wine.
func (s *WineService) Update(ctx context.Context, id uuid.UUID, in UpdateWineInput) (*models.Wine, error) {
	updates, err := in.updates()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, updates, in.GrapeIDs)
}

// SoftDelete hides the wine from public listings, keeping it restorable.
func (s *WineService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore brings a soft-deleted wine back.
func (s *WineService) Restore(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ToggleActive flips temporary visibility without deleting.
func (s *WineService) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Wine, error) {
	return s.repo.ToggleActive(ctx, id)
}
