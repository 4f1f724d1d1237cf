package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lacarta/backend/internal/service"
)

// ListWinesAdmin lists wines for administration, flat and paged.
func (a *API) ListWinesAdmin(c *gin.Context) {
	q := service.WineListQuery{
		Query:   optionalQuery(c, "q"),
		OrderBy: c.Query("ordenar_por"),
	}

	var err error
	if q.IncludeInactive, err = flagQuery(c, "incluir_inactivos"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.IncludeDeleted, err = flagQuery(c, "incluir_eliminados"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if raw := c.Query("categoria_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoria_id is not a valid id"})
			return
		}
		q.CategoryID = &id
	}
	if raw := c.Query("bodega_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bodega_id is not a valid id"})
			return
		}
		q.WineryID = &id
	}

	if q.Limit, err = intQuery(c, "limite", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Offset, err = intQuery(c, "offset", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wines, total, err := a.wines.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vinos": wines, "total": total})
}

// GetWine returns a single wine including soft-deleted ones.
func (a *API) GetWine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wine, err := a.wines.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}

// CreateWine adds a wine to the menu.
func (a *API) CreateWine(c *gin.Context) {
	var req createWineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		handleError(c, err)
		return
	}
	wine, err := a.wines.Create(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wine)
}

// UpdateWine applies a partial update to a wine.
func (a *API) UpdateWine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateWineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		handleError(c, err)
		return
	}
	wine, err := a.wines.Update(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}

// DeleteWine soft-deletes a wine.
func (a *API) DeleteWine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.wines.SoftDelete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreWine brings a soft-deleted wine back onto the menu.
func (a *API) RestoreWine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wine, err := a.wines.Restore(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}

// ToggleWineActive flips a wine's temporary visibility.
func (a *API) ToggleWineActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wine, err := a.wines.ToggleActive(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}
