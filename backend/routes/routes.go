package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoally/backend/config"
	"ecoally/backend/controllers"
	"ecoally/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// Gamification routes
	gamificationController := controllers.NewGamificationController(db, cfg)
	app.Post("/api/gamification/shields/purchase", authMiddleware, gamificationController.PurchaseShield)
}
