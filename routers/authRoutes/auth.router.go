package authRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/config"
	authControllers "courseapi/controllers/auth"
	authValidators "courseapi/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := authControllers.New(db, cfg)

	apiGroup := app.Group("/api")

	apiGroup.Post("/register", authValidators.Register(), ctrl.Register)
	apiGroup.Post("/login", authValidators.Login(), ctrl.Login)
}
