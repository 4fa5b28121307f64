package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/config"
	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	"github.com/foodiesbnb/foodiesbnb-api/internal/events"
	"github.com/foodiesbnb/foodiesbnb-api/internal/favorites"
	"github.com/foodiesbnb/foodiesbnb-api/internal/handlers"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	infraRepo "github.com/foodiesbnb/foodiesbnb-api/internal/infra/repository"
	"github.com/foodiesbnb/foodiesbnb-api/internal/middleware"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
	ucVisit "github.com/foodiesbnb/foodiesbnb-api/internal/usecase/visit"
)

func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bus := events.NewBus()

	userRepo := infraRepo.NewUserStoreRepository(st)
	visitRepo := infraRepo.NewVisitStoreRepository(st)
	favoriteRepo := infraRepo.NewFavoriteStoreRepository(st)
	restaurantRepo := infraRepo.NewRestaurantStoreRepository(st)

	// ======================================================
	// MANAGERS
	// ======================================================
	identitySvc := identity.NewService(userRepo)
	favoritesLedger := favorites.NewLedger(favoriteRepo, bus)
	dir := directory.New(restaurantRepo, bus)

	// ======================================================
	// USE CASES — VISITS
	// ======================================================
	scheduleVisitUC := ucVisit.NewScheduleVisit(visitRepo, dir, bus)
	cancelVisitUC := ucVisit.NewCancelVisit(visitRepo, bus)
	respondVisitUC := ucVisit.NewRespondVisit(visitRepo, dir, bus, cfg.DemoOwnerEmail)
	listVisitsUC := ucVisit.NewListVisits(visitRepo, dir)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(identitySvc, cfg)
	meHandler := handlers.NewMeHandler(identitySvc)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesLedger)
	restaurantHandler := handlers.NewRestaurantHandler(dir, identitySvc)
	visitHandler := handlers.NewVisitHandler(
		identitySvc,
		scheduleVisitUC,
		cancelVisitUC,
		respondVisitUC,
		listVisitsUC,
	)
	devHandler := handlers.NewDevHandler(identitySvc, st)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/public/restaurants", restaurantHandler.ListPublic)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)
			secured.POST("/me/password", meHandler.ChangePassword)

			secured.GET("/me/favorites", favoritesHandler.List)
			secured.PUT("/me/favorites/:restaurantId", favoritesHandler.Add)
			secured.DELETE("/me/favorites/:restaurantId", favoritesHandler.Remove)

			// ------------------------------
			// VISITS (foodie side)
			// ------------------------------
			secured.POST("/me/visits", visitHandler.Schedule)
			secured.GET("/me/visits", visitHandler.ListMine)
			secured.PATCH("/me/visits/:id/cancel", visitHandler.Cancel)

			// ------------------------------
			// RESTAURANT (owner side)
			// ------------------------------
			secured.GET("/me/restaurant", restaurantHandler.GetMine)
			secured.PUT("/me/restaurant", restaurantHandler.UpsertMine)
			secured.GET("/me/restaurant/visits", visitHandler.ListForRestaurant)
			secured.PATCH("/me/restaurant/visits/:id/confirm", visitHandler.Confirm)
			secured.PATCH("/me/restaurant/visits/:id/reject", visitHandler.Reject)

			// ------------------------------
			// DEV PANEL
			// ------------------------------
			secured.GET("/dev/users", devHandler.ListUsers)
			secured.POST("/dev/reset", devHandler.Reset)
		}
	}
}
