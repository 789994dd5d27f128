package learningValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edtech/middleware"
)

// Enroll validates the enrollment body
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   string `json:"user_id" validate:"required,uuid"`
			CourseID string `json:"course_id" validate:"required,uuid"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// LessonParam validates the lesson id path parameter
func LessonParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
		}
		c.Locals("lessonId", id)
		return c.Next()
	}
}
