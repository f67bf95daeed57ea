package courseController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/middleware"
	"courseapi/models"
)

// Controller serves the course catalog and enrollment endpoints
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// GetAllCourses lists every course in storage order. Public endpoint.
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.DB.Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return c.Status(fiber.StatusOK).JSON(courses)
}

func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course := models.Course{
		Name:            reqData.Name,
		Category:        reqData.Category,
		Instructor:      reqData.Instructor,
		Description:     reqData.Description,
		LimitStudents:   reqData.LimitStudents,
		DurationHours:   reqData.DurationHours,
		DurationMinutes: reqData.DurationMinutes,
		Prerequisites:   reqData.Prerequisites,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "Course created successfully")
}

// UpdateCourse overwrites every column of the addressed course. A map update
// is used so zero values are written too. Updating an id that does not exist
// affects zero rows and still reports success.
func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	result := ctrl.DB.Model(&models.Course{}).Where("id = ?", courseID).Updates(map[string]interface{}{
		"name":             reqData.Name,
		"category":         reqData.Category,
		"instructor":       reqData.Instructor,
		"description":      reqData.Description,
		"limit_students":   reqData.LimitStudents,
		"duration_hours":   reqData.DurationHours,
		"duration_minutes": reqData.DurationMinutes,
		"prerequisites":    reqData.Prerequisites,
	})
	if result.Error != nil {
		log.Printf("Error updating course %d: %v", courseID, result.Error)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to update course!")
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "Course updated successfully")
}

// DeleteCourse removes the addressed course. Like UpdateCourse, a missing id
// is not an error.
func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if err := ctrl.DB.Delete(&models.Course{}, courseID).Error; err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "Course deleted successfully")
}
