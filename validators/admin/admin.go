package adminValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edtech/middleware"
)

// UnlockLesson validates the manual unlock body
func UnlockLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   string `json:"user_id" validate:"required,uuid"`
			LessonID string `json:"lesson_id" validate:"required,uuid"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUnlock", reqData)
		return c.Next()
	}
}

// ProgressReport validates the course_id report query
func ProgressReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Query("course_id")
		if courseID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "course_id is required!")
		}
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
		}
		c.Locals("courseId", courseID)
		return c.Next()
	}
}
