package courseController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"courseapi/middleware"
	"courseapi/models"
)

// EnrollInCourse records an enrollment for the authenticated user. If the
// token's username no longer resolves to a stored user, nothing is written
// and the request still succeeds; clients depend on that response today.
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusUnauthorized, "Token invalid")
	}

	reqData, ok := c.Locals("validatedEnroll").(*struct {
		CourseID   uint   `json:"course_id"`
		Department string `json:"department"`
		Batch      string `json:"batch"`
	})
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var user models.User
	if err := ctrl.DB.Where("username = ?", username).First(&user).Error; err == nil {
		enrollment := models.Enrollment{
			StudentID:    user.ID,
			CourseID:     reqData.CourseID,
			Department:   reqData.Department,
			Batch:        reqData.Batch,
			EnrolledDate: time.Now(),
			Status:       "ongoing",
		}
		if err := ctrl.DB.Create(&enrollment).Error; err != nil {
			log.Printf("Error saving enrollment to database: %v", err)
			return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to enroll!")
		}
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "Enrolled successfully")
}

// GetEnrollments lists a user's enrollments joined with course names.
// Public endpoint; an unknown username yields an empty array.
func (ctrl *Controller) GetEnrollments(c *fiber.Ctx) error {
	username := c.Params("username")

	enrollments := make([]models.EnrollmentSummary, 0)
	err := ctrl.DB.Table("enrollments").
		Select("courses.name AS course, enrollments.department, enrollments.batch, enrollments.enrolled_date, enrollments.status").
		Joins("JOIN users ON enrollments.student_id = users.id").
		Joins("JOIN courses ON enrollments.course_id = courses.id").
		Where("users.username = ?", username).
		Scan(&enrollments).Error
	if err != nil {
		log.Printf("Error fetching enrollments for %q: %v", username, err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	return c.Status(fiber.StatusOK).JSON(enrollments)
}
