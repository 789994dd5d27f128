package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "edtech/controllers/admin"
	"edtech/middleware"
	adminValidator "edtech/validators/admin"
)

func SetupAdminRoutes(app *fiber.App, ctrl *adminController.Controller, auth *middleware.Auth) {
	adminGroup := app.Group("/api/admin", auth.AdminRequired)

	adminGroup.Get("/users", ctrl.ListUsers)
	adminGroup.Post("/unlock-lesson", adminValidator.UnlockLesson(), ctrl.UnlockLesson)
	adminGroup.Get("/reports/progress", adminValidator.ProgressReport(), ctrl.ProgressReport)
	adminGroup.Get("/reports/summary", ctrl.EnrollmentSummary)
}
