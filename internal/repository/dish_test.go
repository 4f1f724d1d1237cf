package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/models"
	"github.com/lacarta/backend/internal/repository"
	"github.com/lacarta/backend/internal/testhelpers"
)

func ptr[T any](v T) *T { return &v }

func TestDishListFiltersByCategorySubstring(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)

	entrantes := testhelpers.CreateDishCategory(t, db, "Entrantes")
	postres := testhelpers.CreateDishCategory(t, db, "Postres")
	testhelpers.CreateDish(t, db, "Ensalada César", "9.50", entrantes.ID)
	testhelpers.CreateDish(t, db, "Tarta de queso", "6.00", postres.ID)

	dishes, err := repo.List(context.Background(), repository.DishFilter{
		Category: ptr("entr"),
	})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Ensalada César", dishes[0].Nombre)
	assert.Equal(t, "Entrantes", dishes[0].Category.Nombre)
}

func TestDishListNonexistentCategoryIsEmpty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	testhelpers.CreateDish(t, db, "Croquetas", "8.00", cat.ID)

	dishes, err := repo.List(context.Background(), repository.DishFilter{
		Category: ptr("inexistente"),
	})
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestDishListFiltersByPriceRange(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)

	cat := testhelpers.CreateDishCategory(t, db, "Carnes")
	testhelpers.CreateDish(t, db, "Hamburguesa", "12.50", cat.ID)
	testhelpers.CreateDish(t, db, "Entrecot", "19.90", cat.ID)
	testhelpers.CreateDish(t, db, "Chuletón", "35.00", cat.ID)
	testhelpers.CreateDish(t, db, "Tapa de jamón", "5.00", cat.ID)

	min := decimal.RequireFromString("10")
	max := decimal.RequireFromString("20")
	dishes, err := repo.List(context.Background(), repository.DishFilter{
		PriceMin: &min,
		PriceMax: &max,
	})
	require.NoError(t, err)
	require.Len(t, dishes, 2)

	names := []string{dishes[0].Nombre, dishes[1].Nombre}
	assert.ElementsMatch(t, []string{"Hamburguesa", "Entrecot"}, names)
}

func TestDishListActiveFilter(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	testhelpers.CreateDish(t, db, "Visible", "10.00", cat.ID)
	hidden := testhelpers.CreateDish(t, db, "Oculto", "10.00", cat.ID)
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	dishes, err := repo.List(context.Background(), repository.DishFilter{
		Active: ptr(true),
	})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Visible", dishes[0].Nombre)

	all, err := repo.List(context.Background(), repository.DishFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDishListExcludesSoftDeleted(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	dish := testhelpers.CreateDish(t, db, "Gazpacho", "7.00", cat.ID)
	require.NoError(t, repo.SoftDelete(ctx, dish.ID))

	dishes, err := repo.List(ctx, repository.DishFilter{})
	require.NoError(t, err)
	assert.Empty(t, dishes)

	dishes, err = repo.List(ctx, repository.DishFilter{IncludeDeleted: true})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.NotNil(t, dishes[0].DeletedAt)
	assert.False(t, dishes[0].IsActive)
}

func TestDishSoftDeleteAndRestoreRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	dish := testhelpers.CreateDish(t, db, "Gazpacho", "7.00", cat.ID)

	require.NoError(t, repo.SoftDelete(ctx, dish.ID))
	// Repeating the delete refreshes the timestamp rather than failing.
	require.NoError(t, repo.SoftDelete(ctx, dish.ID))

	require.NoError(t, repo.Restore(ctx, dish.ID))

	restored, err := repo.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Nil(t, restored.DeletedAt)
}

func TestDishSoftDeleteMissingRecord(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)

	err := repo.SoftDelete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDishToggleActive(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	dish := testhelpers.CreateDish(t, db, "Croquetas", "8.00", cat.ID)

	toggled, err := repo.ToggleActive(ctx, dish.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.Nil(t, toggled.DeletedAt)

	toggled, err = repo.ToggleActive(ctx, dish.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestDishCreateAttachesAllergens(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	gluten := testhelpers.CreateAllergen(t, db, "Gluten")
	lactosa := testhelpers.CreateAllergen(t, db, "Lactosa")

	dish, err := repo.Create(ctx, &models.Dish{
		Nombre:     "Croquetas",
		Precio:     decimal.RequireFromString("8.00"),
		CategoryID: cat.ID,
		Audit:      models.Audit{IsActive: true},
	}, []uuid.UUID{gluten.ID, lactosa.ID})
	require.NoError(t, err)
	assert.Len(t, dish.Allergens, 2)
}

func TestDishUpdatePartial(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	gluten := testhelpers.CreateAllergen(t, db, "Gluten")
	dish, err := repo.Create(ctx, &models.Dish{
		Nombre:      "Croquetas",
		Precio:      decimal.RequireFromString("8.00"),
		Sugerencias: true,
		CategoryID:  cat.ID,
		Audit:       models.Audit{IsActive: true},
	}, []uuid.UUID{gluten.ID})
	require.NoError(t, err)

	// False values must not be skipped as zero values.
	updated, err := repo.Update(ctx, dish.ID, map[string]interface{}{
		"precio":      decimal.RequireFromString("9.50"),
		"sugerencias": false,
	}, nil)
	require.NoError(t, err)
	assert.True(t, updated.Precio.Equal(decimal.RequireFromString("9.50")))
	assert.False(t, updated.Sugerencias)
	assert.Equal(t, "Croquetas", updated.Nombre)
	assert.Len(t, updated.Allergens, 1, "allergen set untouched when not provided")

	// An empty non-nil set clears the association.
	updated, err = repo.Update(ctx, dish.ID, nil, &[]uuid.UUID{})
	require.NoError(t, err)
	assert.Empty(t, updated.Allergens)
}

func TestDishListPagingAndOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewDishRepository(db)
	ctx := context.Background()

	cat := testhelpers.CreateDishCategory(t, db, "Entrantes")
	testhelpers.CreateDish(t, db, "Croquetas", "8.00", cat.ID)
	testhelpers.CreateDish(t, db, "Alcachofas", "9.00", cat.ID)
	testhelpers.CreateDish(t, db, "Boquerones", "7.00", cat.ID)

	dishes, err := repo.List(ctx, repository.DishFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Alcachofas", dishes[0].Nombre)
	assert.Equal(t, "Boquerones", dishes[1].Nombre)

	dishes, err = repo.List(ctx, repository.DishFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Croquetas", dishes[0].Nombre)

	total, err := repo.Count(ctx, repository.DishFilter{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total, "count ignores paging")

	byPrice, err := repo.List(ctx, repository.DishFilter{OrderBy: "precio"})
	require.NoError(t, err)
	assert.Equal(t, "Boquerones", byPrice[0].Nombre)
}
