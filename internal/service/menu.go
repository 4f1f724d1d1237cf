package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lacarta/backend/internal/models"
	"github.com/lacarta/backend/internal/repository"
)

// Fallback group labels for wines missing an optional reference. The
// grouping is total: every wine lands somewhere.
const (
	NoOriginLabel = "Sin denominación"
	NoWineryLabel = "Sin bodega"
)

// DishView is the public projection of a dish. Precio is nil when the
// price is unset; Alergenos is never nil.
type DishView struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	Precio      *float64  `json:"precio"`
	Sugerencias bool      `json:"sugerencias"`
	Alergenos   []string  `json:"alergenos"`
}

// DishMenu maps category display names to their dishes.
type DishMenu map[string][]DishView

// WineView is the public projection of a wine.
type WineView struct {
	ID      uuid.UUID `json:"id"`
	Nombre  string    `json:"nombre"`
	Precio  *float64  `json:"precio"`
	Bodega  string    `json:"bodega"`
	Uvas    []string  `json:"uvas"`
	Enologo *string   `json:"enologo"`
}

// WineMenu maps wine type -> origin designation -> wines.
type WineMenu map[string]map[string][]WineView

// DishMenuQuery carries the public dish listing filters.
type DishMenuQuery struct {
	Category    *string
	Suggestions *bool
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
}

// WineMenuQuery carries the public wine listing filters.
type WineMenuQuery struct {
	Category *string
	Origin   *string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// MenuService resolves visibility rules and reshapes flat dish/wine rows
// into the nested name-keyed menu structures.
type MenuService struct {
	dishes *repository.DishRepository
	wines  *repository.WineRepository
}

func NewMenuService(dishes *repository.DishRepository, wines *repository.WineRepository) *MenuService {
	return &MenuService{dishes: dishes, wines: wines}
}

// DishVisibility decides the active-flag filter from the suggestions
// parameter. Asking for suggestions deliberately surfaces inactive dishes
// too; every other listing sees only active ones. Pure function.
func DishVisibility(sugerencias *bool) *bool {
	if sugerencias != nil && *sugerencias {
		return nil
	}
	active := true
	return &active
}

// ListDishesPublic returns the public dish menu grouped by category.
func (s *MenuService) ListDishesPublic(ctx context.Context, q DishMenuQuery) (DishMenu, error) {
	dishes, err := s.dishes.List(ctx, repository.DishFilter{
		Category:    q.Category,
		Suggestions: q.Suggestions,
		PriceMin:    q.PriceMin,
		PriceMax:    q.PriceMax,
		Active:      DishVisibility(q.Suggestions),
	})
	if err != nil {
		return nil, err
	}
	return GroupDishesByCategory(dishes), nil
}

// ListDishesAdmin is the admin variant: includeInactive lifts the default
// active-only rule and includeDeleted surfaces soft-deleted dishes.
func (s *MenuService) ListDishesAdmin(ctx context.Context, q DishMenuQuery, includeInactive, includeDeleted bool) (DishMenu, error) {
	active := DishVisibility(q.Suggestions)
	if includeInactive {
		active = nil
	}
	dishes, err := s.dishes.List(ctx, repository.DishFilter{
		Category:       q.Category,
		Suggestions:    q.Suggestions,
		PriceMin:       q.PriceMin,
		PriceMax:       q.PriceMax,
		Active:         active,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return nil, err
	}
	return GroupDishesByCategory(dishes), nil
}

// ListWinesPublic returns the public wine menu grouped by type and origin.
func (s *MenuService) ListWinesPublic(ctx context.Context, q WineMenuQuery) (WineMenu, error) {
	active := true
	wines, err := s.wines.List(ctx, repository.WineFilter{
		Category: q.Category,
		Origin:   q.Origin,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
		Active:   &active,
	})
	if err != nil {
		return nil, err
	}
	return GroupWinesByTypeAndOrigin(wines), nil
}

// ListWinesAdmin is the admin variant of the grouped wine listing.
func (s *MenuService) ListWinesAdmin(ctx context.Context, q WineMenuQuery, includeInactive, includeDeleted bool) (WineMenu, error) {
	var active *bool
	if !includeInactive {
		t := true
		active = &t
	}
	wines, err := s.wines.List(ctx, repository.WineFilter{
		Category:       q.Category,
		Origin:         q.Origin,
		PriceMin:       q.PriceMin,
		PriceMax:       q.PriceMax,
		Active:         active,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return nil, err
	}
	return GroupWinesByTypeAndOrigin(wines), nil
}

// GroupDishesByCategory reshapes a flat dish list into the category-keyed
// menu structure. Grouping is stable: within each category the incoming
// order is preserved untouched.
func GroupDishesByCategory(dishes []models.Dish) DishMenu {
	menu := make(DishMenu)
	for _, d := range dishes {
		name := d.Category.Nombre
		menu[name] = append(menu[name], DishView{
			ID:          d.ID,
			Nombre:      d.Nombre,
			Descripcion: d.Descripcion,
			Precio:      priceOut(d.Precio),
			Sugerencias: d.Sugerencias,
			Alergenos:   allergenNames(d.Allergens),
		})
	}
	return menu
}

// GroupWinesByTypeAndOrigin reshapes a flat wine list into the nested
// type/origin menu structure. Wines without an origin designation group
// under NoOriginLabel rather than being dropped; wines without a winery
// show NoWineryLabel.
func GroupWinesByTypeAndOrigin(wines []models.Wine) WineMenu {
	menu := make(WineMenu)
	for _, w := range wines {
		tipo := w.Category.Nombre
		origen := NoOriginLabel
		if w.Origin != nil {
			origen = w.Origin.Nombre
		}
		bodega := NoWineryLabel
		if w.Winery != nil {
			bodega = w.Winery.Nombre
		}
		var enologo *string
		if w.Oenologist != nil {
			enologo = &w.Oenologist.Nombre
		}
		if menu[tipo] == nil {
			menu[tipo] = make(map[string][]WineView)
		}
		menu[tipo][origen] = append(menu[tipo][origen], WineView{
			ID:      w.ID,
			Nombre:  w.Nombre,
			Precio:  priceOut(w.Precio),
			Bodega:  bodega,
			Uvas:    grapeNames(w.Grapes),
			Enologo: enologo,
		})
	}
	return menu
}

// priceOut converts a stored price to its display form. An unset (zero)
// price renders as null, never as an approximated sentinel.
func priceOut(p decimal.Decimal) *float64 {
	if p.IsZero() {
		return nil
	}
	f, _ := p.Float64()
	return &f
}

func allergenNames(allergens []models.Allergen) []string {
	names := make([]string, 0, len(allergens))
	for _, a := range allergens {
		names = append(names, a.Nombre)
	}
	return names
}

func grapeNames(grapes []models.GrapeVariety) []string {
	names := make([]string, 0, len(grapes))
	for _, g := range grapes {
		names = append(names, g.Nombre)
	}
	return names
}
