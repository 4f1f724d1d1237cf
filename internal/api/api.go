// Package api wires the HTTP handlers for the menu backend.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacarta/backend/internal/middleware"
	"github.com/lacarta/backend/internal/repository"
	"github.com/lacarta/backend/internal/service"
)

// API holds the services behind the HTTP surface.
type API struct {
	auth    *service.AuthService
	menu    *service.MenuService
	dishes  *service.DishService
	wines   *service.WineService
	lookups *repository.LookupRepository
}

func NewAPI(
	auth *service.AuthService,
	menu *service.MenuService,
	dishes *service.DishService,
	wines *service.WineService,
	lookups *repository.LookupRepository,
) *API {
	return &API{
		auth:    auth,
		menu:    menu,
		dishes:  dishes,
		wines:   wines,
		lookups: lookups,
	}
}

// RegisterRoutes mounts all routes on the engine. rateLimiter may be nil,
// in which case admin mutations run unthrottled.
func (a *API) RegisterRoutes(r *gin.Engine, rateLimiter *middleware.RateLimiter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	menu := v1.Group("/menu")
	{
		menu.GET("/platos", a.GetDishMenu)
		menu.GET("/vinos", a.GetWineMenu)
	}

	public := v1.Group("/public")
	{
		public.GET("/platos", a.ListDishesPublicFlat)
		public.GET("/platos/:id", a.GetDishPublic)
		public.GET("/vinos", a.ListWinesPublicFlat)
		public.GET("/vinos/:id", a.GetWinePublic)
		public.GET("/categorias-platos", a.ListDishCategories)
		public.GET("/alergenos", a.ListAllergens)
		public.GET("/categorias-vinos", a.ListWineCategories)
		public.GET("/bodegas", a.ListWineries)
		public.GET("/denominaciones-origen", a.ListOriginDesignations)
		public.GET("/enologos", a.ListOenologists)
		public.GET("/uvas", a.ListGrapeVarieties)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/login", a.Login)
		auth.POST("/register",
			middleware.AuthMiddleware(a.auth),
			middleware.AdminRequired(),
			a.Register,
		)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(a.auth), middleware.AdminRequired())

	// Mutations are throttled; reads are not.
	throttle := func(c *gin.Context) { c.Next() }
	if rateLimiter != nil {
		throttle = rateLimiter.Middleware()
	}

	// Grouped menu previews for the back office, including hidden items.
	admin.GET("/menu/platos", a.GetDishMenuAdmin)
	admin.GET("/menu/vinos", a.GetWineMenuAdmin)

	platos := admin.Group("/platos")
	{
		platos.GET("", a.ListDishesAdmin)
		platos.GET("/:id", a.GetDish)
		platos.POST("", throttle, a.CreateDish)
		platos.PUT("/:id", throttle, a.UpdateDish)
		platos.DELETE("/:id", throttle, a.DeleteDish)
		platos.POST("/:id/restore", throttle, a.RestoreDish)
		platos.PATCH("/:id/toggle-active", throttle, a.ToggleDishActive)
	}

	vinos := admin.Group("/vinos")
	{
		vinos.GET("", a.ListWinesAdmin)
		vinos.GET("/:id", a.GetWine)
		vinos.POST("", throttle, a.CreateWine)
		vinos.PUT("/:id", throttle, a.UpdateWine)
		vinos.DELETE("/:id", throttle, a.DeleteWine)
		vinos.POST("/:id/restore", throttle, a.RestoreWine)
		vinos.PATCH("/:id/toggle-active", throttle, a.ToggleWineActive)
	}

	lookups := admin.Group("")
	{
		lookups.POST("/categorias-platos", throttle, a.CreateDishCategory)
		lookups.PUT("/categorias-platos/:id", throttle, a.UpdateDishCategory)
		lookups.DELETE("/categorias-platos/:id", throttle, a.DeleteDishCategory)
		lookups.POST("/alergenos", throttle, a.CreateAllergen)
		lookups.PUT("/alergenos/:id", throttle, a.UpdateAllergen)
		lookups.DELETE("/alergenos/:id", throttle, a.DeleteAllergen)
		lookups.POST("/categorias-vinos", throttle, a.CreateWineCategory)
		lookups.PUT("/categorias-vinos/:id", throttle, a.UpdateWineCategory)
		lookups.DELETE("/categorias-vinos/:id", throttle, a.DeleteWineCategory)
		lookups.POST("/bodegas", throttle, a.CreateWinery)
		lookups.PUT("/bodegas/:id", throttle, a.UpdateWinery)
		lookups.DELETE("/bodegas/:id", throttle, a.DeleteWinery)
		lookups.POST("/denominaciones-origen", throttle, a.CreateOriginDesignation)
		lookups.PUT("/denominaciones-origen/:id", throttle, a.UpdateOriginDesignation)
		lookups.DELETE("/denominaciones-origen/:id", throttle, a.DeleteOriginDesignation)
		lookups.POST("/enologos", throttle, a.CreateOenologist)
		lookups.PUT("/enologos/:id", throttle, a.UpdateOenologist)
		lookups.DELETE("/enologos/:id", throttle, a.DeleteOenologist)
		lookups.POST("/uvas", throttle, a.CreateGrapeVariety)
		lookups.PUT("/uvas/:id", throttle, a.UpdateGrapeVariety)
		lookups.DELETE("/uvas/:id", throttle, a.DeleteGrapeVariety)
	}
}

// handleError maps service and storage errors to HTTP responses.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name already in use"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
