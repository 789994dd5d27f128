package feedbackValidator

import (
	"github.com/gofiber/fiber/v2"

	"edtech/middleware"
)

// Feedback validates the feedback body
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  string `json:"user_id" validate:"required,uuid"`
			Message string `json:"message" validate:"required"`
			Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
			Context string `json:"context"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
