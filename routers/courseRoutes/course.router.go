package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	catalogController "edtech/controllers/catalog"
	"edtech/middleware"
	catalogValidator "edtech/validators/catalog"
)

func SetupCourseRoutes(app *fiber.App, ctrl *catalogController.Controller, auth *middleware.Auth) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", ctrl.ListCourses)
	courseGroup.Post("/", auth.AdminRequired, catalogValidator.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Get("/:id/lessons", catalogValidator.CourseParam(), ctrl.ListLessons)
	courseGroup.Post("/:id/lessons", auth.AdminRequired, catalogValidator.CourseParam(), catalogValidator.CreateLesson(), ctrl.CreateLesson)

	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Get("/:id/quiz", catalogValidator.LessonParam(), ctrl.GetQuiz)
	lessonGroup.Post("/:id/quiz", auth.AdminRequired, catalogValidator.LessonParam(), ctrl.SetQuiz)
}
