package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacarta/backend/internal/models"
	"github.com/lacarta/backend/internal/repository"
	"github.com/lacarta/backend/internal/testhelpers"
)

func TestWineListIncludesWinesWithoutOrigin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	rioja := testhelpers.CreateOriginDesignation(t, db, "Rioja")
	testhelpers.CreateWine(t, db, "Marqués de Riscal", "18.00", tinto.ID, nil, &rioja.ID)
	testhelpers.CreateWine(t, db, "Vino de la casa", "9.00", tinto.ID, nil, nil)

	wines, err := repo.List(context.Background(), repository.WineFilter{})
	require.NoError(t, err)
	require.Len(t, wines, 2, "a wine without origin designation must not be dropped")
}

func TestWineListFiltersByOriginSubstring(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	rioja := testhelpers.CreateOriginDesignation(t, db, "Rioja")
	ribera := testhelpers.CreateOriginDesignation(t, db, "Ribera del Duero")
	testhelpers.CreateWine(t, db, "Marqués de Riscal", "18.00", tinto.ID, nil, &rioja.ID)
	testhelpers.CreateWine(t, db, "Protos", "22.00", tinto.ID, nil, &ribera.ID)
	testhelpers.CreateWine(t, db, "Vino de la casa", "9.00", tinto.ID, nil, nil)

	origin := "rioja"
	wines, err := repo.List(context.Background(), repository.WineFilter{Origin: &origin})
	require.NoError(t, err)
	require.Len(t, wines, 1)
	assert.Equal(t, "Marqués de Riscal", wines[0].Nombre)
}

func TestWineListFiltersByTypeSubstring(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	blanco := testhelpers.CreateWineCategory(t, db, "Blanco")
	testhelpers.CreateWine(t, db, "Marqués de Riscal", "18.00", tinto.ID, nil, nil)
	testhelpers.CreateWine(t, db, "Albariño Pazo", "14.00", blanco.ID, nil, nil)

	tipo := "blanco"
	wines, err := repo.List(context.Background(), repository.WineFilter{Category: &tipo})
	require.NoError(t, err)
	require.Len(t, wines, 1)
	assert.Equal(t, "Albariño Pazo", wines[0].Nombre)
}

func TestWineListPresentationOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	blanco := testhelpers.CreateWineCategory(t, db, "Blanco")
	rioja := testhelpers.CreateOriginDesignation(t, db, "Rioja")
	testhelpers.CreateWine(t, db, "Zarzuela", "18.00", tinto.ID, nil, &rioja.ID)
	testhelpers.CreateWine(t, db, "Albariño Pazo", "14.00", blanco.ID, nil, nil)

	wines, err := repo.List(context.Background(), repository.WineFilter{})
	require.NoError(t, err)
	require.Len(t, wines, 2)
	// Categories sort alphabetically: Blanco before Tinto crianza.
	assert.Equal(t, "Albariño Pazo", wines[0].Nombre)
	assert.Equal(t, "Zarzuela", wines[1].Nombre)
}

func TestWineSoftDeleteAndRestore(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)
	ctx := context.Background()

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	wine := testhelpers.CreateWine(t, db, "Marqués de Riscal", "18.00", tinto.ID, nil, nil)

	require.NoError(t, repo.SoftDelete(ctx, wine.ID))

	wines, err := repo.List(ctx, repository.WineFilter{})
	require.NoError(t, err)
	assert.Empty(t, wines)

	require.NoError(t, repo.Restore(ctx, wine.ID))

	wines, err = repo.List(ctx, repository.WineFilter{})
	require.NoError(t, err)
	require.Len(t, wines, 1)
	assert.True(t, wines[0].IsActive)
}

func TestWineCreateAttachesGrapes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)
	ctx := context.Background()

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	bodega := testhelpers.CreateWinery(t, db, "Bodegas Riscal")
	tempranillo := models.GrapeVariety{Nombre: "Tempranillo", Tipo: "tinta", Audit: models.Audit{IsActive: true}}
	require.NoError(t, db.Create(&tempranillo).Error)

	wine, err := repo.Create(ctx, &models.Wine{
		Nombre:     "Marqués de Riscal",
		Precio:     decimal.RequireFromString("18.00"),
		CategoryID: tinto.ID,
		WineryID:   &bodega.ID,
		Audit:      models.Audit{IsActive: true},
	}, []uuid.UUID{tempranillo.ID})
	require.NoError(t, err)

	require.Len(t, wine.Grapes, 1)
	assert.Equal(t, "Tempranillo", wine.Grapes[0].Nombre)
	require.NotNil(t, wine.Winery)
	assert.Equal(t, "Bodegas Riscal", wine.Winery.Nombre)
}

func TestWineUpdateReplacesGrapes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)
	ctx := context.Background()

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	tempranillo := models.GrapeVariety{Nombre: "Tempranillo", Tipo: "tinta", Audit: models.Audit{IsActive: true}}
	garnacha := models.GrapeVariety{Nombre: "Garnacha", Tipo: "tinta", Audit: models.Audit{IsActive: true}}
	require.NoError(t, db.Create(&tempranillo).Error)
	require.NoError(t, db.Create(&garnacha).Error)

	wine, err := repo.Create(ctx, &models.Wine{
		Nombre:     "Marqués de Riscal",
		Precio:     decimal.RequireFromString("18.00"),
		CategoryID: tinto.ID,
		Audit:      models.Audit{IsActive: true},
	}, []uuid.UUID{tempranillo.ID})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, wine.ID, nil, &[]uuid.UUID{garnacha.ID})
	require.NoError(t, err)
	require.Len(t, updated.Grapes, 1)
	assert.Equal(t, "Garnacha", updated.Grapes[0].Nombre)
}

func TestWineListFiltersByWinery(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewWineRepository(db)

	tinto := testhelpers.CreateWineCategory(t, db, "Tinto crianza")
	riscal := testhelpers.CreateWinery(t, db, "Bodegas Riscal")
	protos := testhelpers.CreateWinery(t, db, "Bodegas Protos")
	testhelpers.CreateWine(t, db, "Marqués de Riscal", "18.00", tinto.ID, &riscal.ID, nil)
	testhelpers.CreateWine(t, db, "Protos Crianza", "22.00", tinto.ID, &protos.ID, nil)

	wines, err := repo.List(context.Background(), repository.WineFilter{WineryID: &riscal.ID})
	require.NoError(t, err)
	require.Len(t, wines, 1)
	assert.Equal(t, "Marqués de Riscal", wines[0].Nombre)
}
