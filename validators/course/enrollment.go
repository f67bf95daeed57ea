package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"courseapi/middleware"
)

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID   uint   `json:"course_id"`
			Department string `json:"department"`
			Batch      string `json:"batch"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
