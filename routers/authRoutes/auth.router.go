package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "edtech/controllers/auth"
	authValidator "edtech/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/request-otp", authValidator.RequestOTP(), ctrl.RequestOTP)
	authGroup.Post("/verify-otp", authValidator.VerifyOTP(), ctrl.VerifyOTP)
}
