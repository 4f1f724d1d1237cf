package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lacarta/backend/internal/service"
)

// GetDishMenu serves the public dish menu grouped by category.
// Supported filters: categoria (substring), sugerencias, precio_min,
// precio_max.
func (a *API) GetDishMenu(c *gin.Context) {
	q := service.DishMenuQuery{
		Category: optionalQuery(c, "categoria"),
	}

	var err error
	if q.Suggestions, err = boolQuery(c, "sugerencias"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMin, err = priceQuery(c, "precio_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMax, err = priceQuery(c, "precio_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := a.menu.ListDishesPublic(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetWineMenu serves the public wine menu grouped by type and origin
// designation. Supported filters: tipo (substring), denominacion
// (substring), precio_min, precio_max.
func (a *API) GetWineMenu(c *gin.Context) {
	q := service.WineMenuQuery{
		Category: optionalQuery(c, "tipo"),
		Origin:   optionalQuery(c, "denominacion"),
	}

	var err error
	if q.PriceMin, err = priceQuery(c, "precio_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMax, err = priceQuery(c, "precio_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := a.menu.ListWinesPublic(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetDishMenuAdmin is the back-office preview of the grouped dish menu.
// incluir_inactivos surfaces temporarily hidden dishes, incluir_eliminados
// soft-deleted ones.
func (a *API) GetDishMenuAdmin(c *gin.Context) {
	q := service.DishMenuQuery{
		Category: optionalQuery(c, "categoria"),
	}
	var err error
	if q.Suggestions, err = boolQuery(c, "sugerencias"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMin, err = priceQuery(c, "precio_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMax, err = priceQuery(c, "precio_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	includeInactive, err := flagQuery(c, "incluir_inactivos")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	includeDeleted, err := flagQuery(c, "incluir_eliminados")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := a.menu.ListDishesAdmin(c.Request.Context(), q, includeInactive, includeDeleted)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetWineMenuAdmin is the back-office preview of the grouped wine menu.
func (a *API) GetWineMenuAdmin(c *gin.Context) {
	q := service.WineMenuQuery{
		Category: optionalQuery(c, "tipo"),
		Origin:   optionalQuery(c, "denominacion"),
	}
	var err error
	if q.PriceMin, err = priceQuery(c, "precio_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.PriceMax, err = priceQuery(c, "precio_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	includeInactive, err := flagQuery(c, "incluir_inactivos")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	includeDeleted, err := flagQuery(c, "incluir_eliminados")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := a.menu.ListWinesAdmin(c.Request.Context(), q, includeInactive, includeDeleted)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func optionalQuery(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

// flagQuery parses an optional boolean flag, absent meaning false.
func flagQuery(c *gin.Context, name string) (bool, error) {
	b, err := boolQuery(c, name)
	if err != nil {
		return false, err
	}
	return b != nil && *b, nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", name)
	}
	return &b, nil
}

func priceQuery(c *gin.Context, name string) (*decimal.Decimal, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &d, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
