package statsController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courseapi/middleware"
	"courseapi/models"
)

// Controller serves the aggregate counters
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Overview reports catalog-wide totals. Only users with role exactly
// "student" count toward total_students.
func (ctrl *Controller) Overview(c *fiber.Ctx) error {
	var totalCourses, totalStudents, totalEnrollments int64

	if err := ctrl.DB.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to fetch stats!")
	}
	if err := ctrl.DB.Model(&models.User{}).Where("role = ?", "student").Count(&totalStudents).Error; err != nil {
		log.Printf("Error counting students: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to fetch stats!")
	}
	if err := ctrl.DB.Model(&models.Enrollment{}).Count(&totalEnrollments).Error; err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to fetch stats!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"total_courses":     totalCourses,
		"total_students":    totalStudents,
		"total_enrollments": totalEnrollments,
	})
}
