package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/config"
	"github.com/foodiesbnb/foodiesbnb-api/internal/middleware"
	"github.com/foodiesbnb/foodiesbnb-api/internal/routes"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

func main() {

	cfg := config.Load()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s (store: %s)", cfg.Addr(), cfg.StoreBackend)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemory(), nil
	case "redis":
		return store.NewRedis(cfg.RedisAddr, "foodiesbnb:"), nil
	default:
		return store.NewFile(cfg.DataDir)
	}
}
