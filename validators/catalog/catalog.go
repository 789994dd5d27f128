package catalogValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"edtech/middleware"
)

// CourseParam validates the course id path parameter
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
		}
		c.Locals("courseId", id)
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

// CreateCourse validates the course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title" validate:"required"`
			Description  string `json:"description"`
			Category     string `json:"category" validate:"required"`
			Subcategory  string `json:"subcategory"`
			ThumbnailURL string `json:"thumbnail_url"`
			IsPublished  *bool  `json:"is_published"`
			PriceRupees  int    `json:"price_rupees" validate:"gte=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateLesson validates the lesson creation body
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID      string `json:"course_id" validate:"required,uuid"`
			Title         string `json:"title" validate:"required"`
			VideoURL      string `json:"video_url"`
			Order         int    `json:"order" validate:"gte=0"`
			IsFreePreview bool   `json:"is_free_preview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
