package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lacarta/backend/internal/service"
)

// ListDishesAdmin lists dishes for administration. Unlike the public menu
// it is flat and paged, and can surface inactive and soft-deleted rows.
func (a *API) ListDishesAdmin(c *gin.Context) {
	q := service.DishListQuery{
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

	if q.Limit, err = intQuery(c, "limite", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Offset, err = intQuery(c, "offset", 0); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dishes, total, err := a.dishes.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"platos": dishes, "total": total})
}

// GetDish returns a single dish including soft-deleted ones.
func (a *API) GetDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dish, err := a.dishes.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// CreateDish adds a dish to the menu.
func (a *API) CreateDish(c *gin.Context) {
	var req createDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		handleError(c, err)
		return
	}
	dish, err := a.dishes.Create(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// UpdateDish applies a partial update to a dish.
func (a *API) UpdateDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		handleError(c, err)
		return
	}
	dish, err := a.dishes.Update(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish soft-deletes a dish; it disappears from public listings but
// stays restorable.
func (a *API) DeleteDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.dishes.SoftDelete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreDish brings a soft-deleted dish back onto the menu.
func (a *API) RestoreDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dish, err := a.dishes.Restore(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// ToggleDishActive flips a dish's temporary visibility.
func (a *API) ToggleDishActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dish, err := a.dishes.ToggleActive(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// pathID parses the :id path parameter, writing the error response itself
// when it is malformed.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
