package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacarta/backend/internal/models"
)

// The public reference listings back the admin forms and menu filters:
// each returns the non-deleted rows of one lookup table in name order,
// optionally narrowed by a ?q= name search.

func (a *API) ListDishCategories(c *gin.Context) {
	var categories []models.DishCategory
	if err := a.lookups.ListInto(c.Request.Context(), &categories, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (a *API) ListAllergens(c *gin.Context) {
	var allergens []models.Allergen
	if err := a.lookups.ListInto(c.Request.Context(), &allergens, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, allergens)
}

func (a *API) ListWineCategories(c *gin.Context) {
	var categories []models.WineCategory
	if err := a.lookups.ListInto(c.Request.Context(), &categories, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (a *API) ListWineries(c *gin.Context) {
	var wineries []models.Winery
	if err := a.lookups.ListInto(c.Request.Context(), &wineries, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wineries)
}

func (a *API) ListOriginDesignations(c *gin.Context) {
	var origins []models.OriginDesignation
	if err := a.lookups.ListInto(c.Request.Context(), &origins, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, origins)
}

func (a *API) ListOenologists(c *gin.Context) {
	var oenologists []models.Oenologist
	if err := a.lookups.ListInto(c.Request.Context(), &oenologists, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, oenologists)
}

func (a *API) ListGrapeVarieties(c *gin.Context) {
	var grapes []models.GrapeVariety
	if err := a.lookups.ListInto(c.Request.Context(), &grapes, c.Query("q")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, grapes)
}

// Admin creation of reference rows. Duplicate names come back as 400 via
// the unique index rather than a pre-check.

func (a *API) CreateDishCategory(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat := models.DishCategory{
		Nombre: req.Nombre,
		Audit:  models.Audit{IsActive: true},
	}
	if err := a.lookups.Create(c.Request.Context(), &cat); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (a *API) CreateAllergen(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allergen := models.Allergen{
		Nombre: req.Nombre,
		Audit:  models.Audit{IsActive: true},
	}
	if err := a.lookups.Create(c.Request.Context(), &allergen); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, allergen)
}

func (a *API) CreateWineCategory(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat := models.WineCategory{
		Nombre: req.Nombre,
		Audit:  models.Audit{IsActive: true},
	}
	if err := a.lookups.Create(c.Request.Context(), &cat); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (a *API) CreateWinery(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	winery := models.Winery{
		Nombre: req.Nombre,
		Region: req.Region,
		Audit:  models.Audit{IsActive: true},
	}
	if winery.Region == "" {
		winery.Region = "sin especificar"
	}
	if err := a.lookups.Create(c.Request.Context(), &winery); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, winery)
}

func (a *API) CreateOriginDesignation(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	origin := models.OriginDesignation{
		Nombre: req.Nombre,
		Region: req.Region,
		Audit:  models.Audit{IsActive: true},
	}
	if err := a.lookups.Create(c.Request.Context(), &origin); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, origin)
}

func (a *API) CreateOenologist(c *gin.Context) {
	var req createOenologistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oenologist := models.Oenologist{
		Nombre:          req.Nombre,
		ExperienceYears: req.ExperienceYears,
		Audit:           models.Audit{IsActive: true},
	}
	if err := a.lookups.Create(c.Request.Context(), &oenologist); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, oenologist)
}

func (a *API) CreateGrapeVariety(c *gin.Context) {
	var req createGrapeVarietyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grape := models.GrapeVariety{
		Nombre: req.Nombre,
		Tipo:   req.Tipo,
		Audit:  models.Audit{IsActive: true},
	}
	if grape.Tipo == "" {
		grape.Tipo = "sin especificar"
	}
	if err := a.lookups.Create(c.Request.Context(), &grape); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grape)
}

// Admin rename/edit of reference rows. Updates are partial; renaming onto
// a taken name is a 400 like creation.

func (a *API) UpdateDishCategory(c *gin.Context) {
	a.updateLookup(c, &models.DishCategory{}, &models.DishCategory{}, false)
}

func (a *API) UpdateAllergen(c *gin.Context) {
	a.updateLookup(c, &models.Allergen{}, &models.Allergen{}, false)
}

func (a *API) UpdateWineCategory(c *gin.Context) {
	a.updateLookup(c, &models.WineCategory{}, &models.WineCategory{}, false)
}

func (a *API) UpdateWinery(c *gin.Context) {
	a.updateLookup(c, &models.Winery{}, &models.Winery{}, true)
}

func (a *API) UpdateOriginDesignation(c *gin.Context) {
	a.updateLookup(c, &models.OriginDesignation{}, &models.OriginDesignation{}, true)
}

func (a *API) UpdateOenologist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateOenologistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.updates()
	if err != nil {
		handleError(c, err)
		return
	}
	if err := a.lookups.Update(c.Request.Context(), &models.Oenologist{}, id, updates); err != nil {
		handleError(c, err)
		return
	}
	var out models.Oenologist
	if err := a.lookups.GetByID(c.Request.Context(), &out, id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) UpdateGrapeVariety(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateGrapeVarietyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.updates()
	if err != nil {
		handleError(c, err)
		return
	}
	if err := a.lookups.Update(c.Request.Context(), &models.GrapeVariety{}, id, updates); err != nil {
		handleError(c, err)
		return
	}
	var out models.GrapeVariety
	if err := a.lookups.GetByID(c.Request.Context(), &out, id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// updateLookup handles the name-keyed entities, which share the same
// partial-update payload. model picks the table, out receives the result;
// hasRegion gates the region column, which only wineries and origin
// designations carry.
func (a *API) updateLookup(c *gin.Context, model interface{}, out interface{}, hasRegion bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !hasRegion {
		req.Region = nil
	}
	updates, err := req.updates()
	if err != nil {
		handleError(c, err)
		return
	}
	if err := a.lookups.Update(c.Request.Context(), model, id, updates); err != nil {
		handleError(c, err)
		return
	}
	if err := a.lookups.GetByID(c.Request.Context(), out, id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Admin soft-delete of reference rows; the row leaves every listing but
// keeps its name reserved.

func (a *API) DeleteDishCategory(c *gin.Context) {
	a.deleteLookup(c, &models.DishCategory{})
}

func (a *API) DeleteAllergen(c *gin.Context) {
	a.deleteLookup(c, &models.Allergen{})
}

func (a *API) DeleteWineCategory(c *gin.Context) {
	a.deleteLookup(c, &models.WineCategory{})
}

func (a *API) DeleteWinery(c *gin.Context) {
	a.deleteLookup(c, &models.Winery{})
}

func (a *API) DeleteOriginDesignation(c *gin.Context) {
	a.deleteLookup(c, &models.OriginDesignation{})
}

func (a *API) DeleteOenologist(c *gin.Context) {
	a.deleteLookup(c, &models.Oenologist{})
}

func (a *API) DeleteGrapeVariety(c *gin.Context) {
	a.deleteLookup(c, &models.GrapeVariety{})
}

func (a *API) deleteLookup(c *gin.Context, model interface{}) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.lookups.SoftDelete(c.Request.Context(), model, id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
