package authValidator

import (
	"github.com/gofiber/fiber/v2"

	"edtech/middleware"
)

// RequestOTP validates the OTP request body
func RequestOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone string `json:"phone" validate:"required,min=4,max=15"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOTPRequest", reqData)
		return c.Next()
	}
}

// VerifyOTP validates the OTP verification body
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone string `json:"phone" validate:"required,min=4,max=15"`
			OTP   string `json:"otp" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOTPVerify", reqData)
		return c.Next()
	}
}
