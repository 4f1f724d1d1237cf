// Package server assembles the HTTP server from its parts: router,
// middleware, services and repositories.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lacarta/backend/config"
	"github.com/lacarta/backend/internal/api"
	"github.com/lacarta/backend/internal/middleware"
	"github.com/lacarta/backend/internal/repository"
	"github.com/lacarta/backend/internal/service"
)

// Server is the assembled HTTP server.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// New wires repositories, services and routes into a runnable server.
// redisClient may be nil; admin mutations then run without rate limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	dishRepo := repository.NewDishRepository(db)
	wineRepo := repository.NewWineRepository(db)
	lookupRepo := repository.NewLookupRepository(db)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	menuService := service.NewMenuService(dishRepo, wineRepo)
	dishService := service.NewDishService(dishRepo)
	wineService := service.NewWineService(wineRepo)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewMenuMutationRateLimiter(redisClient)
	} else {
		log.Printf("Redis unavailable, admin rate limiting disabled")
	}

	handlers := api.NewAPI(authService, menuService, dishService, wineService, lookupRepo)
	handlers.RegisterRoutes(engine, rateLimiter)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	return &Server{
		cfg:    cfg,
		engine: engine,
		http: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("Shutting down")
	return s.http.Shutdown(shutdownCtx)
}
