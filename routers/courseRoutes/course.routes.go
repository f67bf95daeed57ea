package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/config"
	controllers "courseapi/controllers/course"
	"courseapi/middleware"
	validators "courseapi/validators/course"
)

// SetupCourseRoutes sets up the course catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	ctrl := controllers.New(db)
	auth := middleware.JWTMiddleware(cfg.JWTKey)

	apiGroup := app.Group("/api")

	// Catalog; listing is public, mutation needs a token
	apiGroup.Get("/courses", ctrl.GetAllCourses)
	apiGroup.Post("/courses", auth, validators.CoursePayload(), ctrl.CreateCourse)
	apiGroup.Put("/courses/:id", auth, validators.CourseID(), validators.CoursePayload(), ctrl.UpdateCourse)
	apiGroup.Delete("/courses/:id", auth, validators.CourseID(), ctrl.DeleteCourse)

	// Enrollment
	apiGroup.Post("/enroll", auth, validators.Enroll(), ctrl.EnrollInCourse)
	apiGroup.Get("/enrollments/:username", ctrl.GetEnrollments)
}
