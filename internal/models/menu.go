package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DishCategory groups dishes under a unique display name ("Entrantes",
// "Postres", ...). The name is what the public menu is keyed by.
type DishCategory struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Audit
	Dishes []Dish `gorm:"foreignKey:CategoryID" json:"-"`
}

// Allergen is attached to dishes through a many-to-many join.
type Allergen struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Audit
	Dishes []Dish `gorm:"many2many:dish_allergens" json:"-"`
}

// Dish is a menu item. Suggestions ("sugerencias") are chef's picks whose
// listing relaxes the active-only visibility rule.
type Dish struct {
	ID           uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre       string          `gorm:"size:100;index;not null" json:"nombre"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	PrecioUnidad *string         `gorm:"size:20" json:"precio_unidad,omitempty"`
	Descripcion  *string         `gorm:"type:text" json:"descripcion"`
	Sugerencias  bool            `gorm:"not null" json:"sugerencias"`
	CategoryID   uuid.UUID       `gorm:"type:varchar(36);index;not null" json:"categoria_id"`
	Audit
	Category  DishCategory `gorm:"foreignKey:CategoryID" json:"categoria"`
	Allergens []Allergen   `gorm:"many2many:dish_allergens" json:"alergenos"`
}

// WineCategory is the wine "type" ("Tinto crianza", "Blanco", ...).
type WineCategory struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Audit
	Wines []Wine `gorm:"foreignKey:CategoryID" json:"-"`
}

// Winery produces wines. Region defaults to "sin especificar" when the
// data source does not carry one.
type Winery struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Region string    `gorm:"size:100;not null;default:'sin especificar'" json:"region"`
	Audit
	Wines []Wine `gorm:"foreignKey:WineryID" json:"-"`
}

// OriginDesignation is a wine's regional certification (denominación de
// origen). Wines may carry none.
type OriginDesignation struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	Region string    `gorm:"size:100" json:"region"`
	Audit
	Wines []Wine `gorm:"foreignKey:OriginID" json:"-"`
}

// Oenologist is the winemaker credited for a wine.
type Oenologist struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre          string    `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experiencia_anos"`
	Audit
	Wines []Wine `gorm:"foreignKey:OenologistID" json:"-"`
}

// GrapeVariety is attached to wines through a many-to-many join.
type GrapeVariety struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre string    `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Tipo   string    `gorm:"size:20;not null;default:'sin especificar'" json:"tipo"`
	Audit
	Wines []Wine `gorm:"many2many:wine_grapes" json:"-"`
}

// Wine is a menu item. Winery, origin designation and oenologist are
// optional references; the category is required.
type Wine struct {
	ID           uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	Nombre       string          `gorm:"size:100;index;not null" json:"nombre"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	PrecioUnidad *string         `gorm:"size:20" json:"precio_unidad,omitempty"`
	CategoryID   uuid.UUID       `gorm:"type:varchar(36);index;not null" json:"categoria_id"`
	WineryID     *uuid.UUID      `gorm:"type:varchar(36);index" json:"bodega_id"`
	OriginID     *uuid.UUID      `gorm:"type:varchar(36);index" json:"denominacion_origen_id"`
	OenologistID *uuid.UUID      `gorm:"type:varchar(36);index" json:"enologo_id"`
	Audit
	Category   WineCategory       `gorm:"foreignKey:CategoryID" json:"categoria"`
	Winery     *Winery            `gorm:"foreignKey:WineryID" json:"bodega"`
	Origin     *OriginDesignation `gorm:"foreignKey:OriginID" json:"denominacion_origen"`
	Oenologist *Oenologist        `gorm:"foreignKey:OenologistID" json:"enologo"`
	Grapes     []GrapeVariety     `gorm:"many2many:wine_grapes" json:"uvas"`
}

func (c *DishCategory) BeforeCreate(tx *gorm.DB) error      { ensureID(&c.ID); return nil }
func (a *Allergen) BeforeCreate(tx *gorm.DB) error          { ensureID(&a.ID); return nil }
func (d *Dish) BeforeCreate(tx *gorm.DB) error              { ensureID(&d.ID); return nil }
func (c *WineCategory) BeforeCreate(tx *gorm.DB) error      { ensureID(&c.ID); return nil }
func (w *Winery) BeforeCreate(tx *gorm.DB) error            { ensureID(&w.ID); return nil }
func (o *OriginDesignation) BeforeCreate(tx *gorm.DB) error { ensureID(&o.ID); return nil }
func (o *Oenologist) BeforeCreate(tx *gorm.DB) error        { ensureID(&o.ID); return nil }
func (g *GrapeVariety) BeforeCreate(tx *gorm.DB) error      { ensureID(&g.ID); return nil }
func (w *Wine) BeforeCreate(tx *gorm.DB) error              { ensureID(&w.ID); return nil }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
