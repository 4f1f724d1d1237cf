package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lacarta/backend/internal/service"
)

// ListDishesPublicFlat is the flat, paginated counterpart of the grouped
// dish menu: active dishes only, name search via ?q=, ordered by name or
// price.
func (a *API) ListDishesPublicFlat(c *gin.Context) {
	q := service.DishListQuery{
		Query:   optionalQuery(c, "q"),
		OrderBy: c.Query("ordenar_por"),
	}

	if raw := c.Query("categoria_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoria_id is not a valid id"})
			return
		}
		q.CategoryID = &id
	}

	var err error
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

// GetDishPublic serves the public dish detail page. Hidden and deleted
// dishes are indistinguishable from missing ones.
func (a *API) GetDishPublic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dish, err := a.dishes.GetPublic(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// ListWinesPublicFlat is the flat, paginated counterpart of the grouped
// wine menu.
func (a *API) ListWinesPublicFlat(c *gin.Context) {
	q := service.WineListQuery{
		Query:   optionalQuery(c, "q"),
		OrderBy: c.Query("ordenar_por"),
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

	var err error
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

// GetWinePublic serves the public wine detail page.
func (a *API) GetWinePublic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wine, err := a.wines.GetPublic(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}
