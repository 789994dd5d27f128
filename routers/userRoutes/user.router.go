package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	feedbackController "edtech/controllers/feedback"
	notificationController "edtech/controllers/notification"
	"edtech/middleware"
	feedbackValidator "edtech/validators/feedback"
)

func SetupUserRoutes(app *fiber.App, notes *notificationController.Controller, feedback *feedbackController.Controller, auth *middleware.Auth) {
	noteGroup := app.Group("/api/notifications", auth.CurrentUser)
	noteGroup.Get("/", notes.List)
	noteGroup.Post("/:id/read", notes.MarkRead)

	app.Post("/api/feedback", auth.CurrentUser, feedbackValidator.Feedback(), feedback.Create)
}
