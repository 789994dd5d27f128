package catalogController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edtech/middleware"
	"edtech/models"
)

type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// ListCourses returns the catalog, optionally filtered by category and
// subcategory, sorted by title.
func (ctrl *Controller) ListCourses(c *fiber.Ctx) error {
	query := ctrl.Db.Model(&models.Course{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if subcategory := c.Query("subcategory"); subcategory != "" {
		query = query.Where("subcategory = ?", subcategory)
	}

	var courses []models.Course
	if err := query.Order("title asc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return c.JSON(courses)
}

// CreateCourse creates a course (admin only)
func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description"`
		Category     string `json:"category" validate:"required"`
		Subcategory  string `json:"subcategory"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsPublished  *bool  `json:"is_published"`
		PriceRupees  int    `json:"price_rupees" validate:"gte=0"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Subcategory:  reqData.Subcategory,
		ThumbnailURL: reqData.ThumbnailURL,
		IsPublished:  true,
		PriceRupees:  reqData.PriceRupees,
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := ctrl.Db.Create(&course).Error; err != nil {
		log.Printf("Error saving course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// ListLessons returns a course's lessons in unlock order.
func (ctrl *Controller) ListLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(string)

	var lessons []models.Lesson
	if err := ctrl.Db.Where("course_id = ?", courseID).
		Order("lesson_order asc").
		Find(&lessons).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lessons!")
	}

	return c.JSON(lessons)
}

// CreateLesson creates a lesson under a course (admin only). The body's
// course_id must match the path.
func (ctrl *Controller) CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(string)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		CourseID      string `json:"course_id" validate:"required,uuid"`
		Title         string `json:"title" validate:"required"`
		VideoURL      string `json:"video_url"`
		Order         int    `json:"order" validate:"gte=0"`
		IsFreePreview bool   `json:"is_free_preview"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.CourseID != courseID {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "course_id mismatch")
	}

	var course models.Course
	if err := ctrl.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	lesson := models.Lesson{
		CourseID:      courseID,
		Title:         reqData.Title,
		VideoURL:      reqData.VideoURL,
		Order:         reqData.Order,
		IsFreePreview: reqData.IsFreePreview,
	}

	if err := ctrl.Db.Create(&lesson).Error; err != nil {
		log.Printf("Error saving lesson: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lesson!")
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}
