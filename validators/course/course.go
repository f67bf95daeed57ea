package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseapi/middleware"
	"courseapi/models"
)

// CoursePayload parses the course fields from the body. Every field is
// optional; absent ones keep their zero value, matching the stored defaults.
func CoursePayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Course)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// The id always comes from the route, never the body
		reqData.ID = 0

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
