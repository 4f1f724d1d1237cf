package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
)

// CreateTestUser inserts an active account with the given password hashed.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
		IsAdmin:      isAdmin,
		Audit:        models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateDishCategory inserts a dish category with the given name.
func CreateDishCategory(t *testing.T, db *gorm.DB, nombre string) *models.DishCategory {
	t.Helper()

	cat := &models.DishCategory{
		Nombre: nombre,
		Audit:  models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

// CreateAllergen inserts an allergen with the given name.
func CreateAllergen(t *testing.T, db *gorm.DB, nombre string) *models.Allergen {
	t.Helper()

	a := &models.Allergen{
		Nombre: nombre,
		Audit:  models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

// CreateDish inserts an active dish with the given name, price and category.
func CreateDish(t *testing.T, db *gorm.DB, nombre string, precio string, categoryID uuid.UUID) *models.Dish {
	t.Helper()

	dish := &models.Dish{
		Nombre:     nombre,
		Precio:     decimal.RequireFromString(precio),
		CategoryID: categoryID,
		Audit:      models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(dish).Error)
	return dish
}

// CreateWineCategory inserts a wine type with the given name.
func CreateWineCategory(t *testing.T, db *gorm.DB, nombre string) *models.WineCategory {
	t.Helper()

	cat := &models.WineCategory{
		Nombre: nombre,
		Audit:  models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

// CreateWinery inserts a winery with the given name.
func CreateWinery(t *testing.T, db *gorm.DB, nombre string) *models.Winery {
	t.Helper()

	w := &models.Winery{
		Nombre: nombre,
		Region: "sin especificar",
		Audit:  models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

// CreateOriginDesignation inserts an origin designation with the given name.
func CreateOriginDesignation(t *testing.T, db *gorm.DB, nombre string) *models.OriginDesignation {
	t.Helper()

	o := &models.OriginDesignation{
		Nombre: nombre,
		Audit:  models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

// CreateWine inserts an active wine. wineryID and originID may be nil.
func CreateWine(t *testing.T, db *gorm.DB, nombre string, precio string, categoryID uuid.UUID, wineryID, originID *uuid.UUID) *models.Wine {
	t.Helper()

	wine := &models.Wine{
		Nombre:     nombre,
		Precio:     decimal.RequireFromString(precio),
		CategoryID: categoryID,
		WineryID:   wineryID,
		OriginID:   originID,
		Audit:      models.Audit{IsActive: true},
	}
	require.NoError(t, db.Create(wine).Error)
	return wine
}
