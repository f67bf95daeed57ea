package statsRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/config"
	statsControllers "courseapi/controllers/stats"
	"courseapi/middleware"
)

func SetupStatsRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := statsControllers.New(db)

	apiGroup := app.Group("/api")

	apiGroup.Get("/stats", middleware.JWTMiddleware(cfg.JWTKey), ctrl.Overview)
}
