package learnRoutes

import (
	"github.com/gofiber/fiber/v2"

	learningController "edtech/controllers/learning"
	"edtech/middleware"
	learningValidator "edtech/validators/learning"
)

func SetupLearnRoutes(app *fiber.App, ctrl *learningController.Controller, auth *middleware.Auth) {
	app.Post("/api/enroll", auth.CurrentUser, learningValidator.Enroll(), ctrl.Enroll)

	meGroup := app.Group("/api/me", auth.CurrentUser)
	meGroup.Get("/courses", ctrl.MyCourses)
	meGroup.Get("/progress", ctrl.MyProgress)

	app.Post("/api/lessons/:id/submit-quiz", auth.CurrentUser, learningValidator.LessonParam(), ctrl.SubmitQuiz)
}
