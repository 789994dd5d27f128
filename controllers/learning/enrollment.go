package learningController

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

// Enroll creates an enrollment for the calling user and unlocks the
// course's first lesson. Enrolling twice is a no-op.
func (ctrl *Controller) Enroll(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	reqData, ok := c.Locals("validatedEnroll").(*struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		CourseID string `json:"course_id" validate:"required,uuid"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.UserID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Cannot enroll for another user")
	}

	var course models.Course
	if err := ctrl.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	var existing models.Enrollment
	if err := ctrl.Db.Where("user_id = ? AND course_id = ?", user.ID, reqData.CourseID).
		First(&existing).Error; err == nil {
		return c.JSON(fiber.Map{"message": "Already enrolled"})
	}

	enrollment := models.Enrollment{
		UserID:   user.ID,
		CourseID: reqData.CourseID,
		Status:   models.EnrollmentActive,
	}
	if err := ctrl.Db.Create(&enrollment).Error; err != nil {
		log.Printf("Error saving enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll!")
	}

	// Unlock the first lesson by order. Best-effort: the enrollment stands
	// even if this write fails (no cross-record atomicity in the store).
	var first models.Lesson
	if err := ctrl.Db.Where("course_id = ?", reqData.CourseID).
		Order("lesson_order asc").
		First(&first).Error; err == nil {
		if err := ctrl.upsertProgress(user.ID, first.CourseID, first.ID, func(lp *models.LessonProgress) {
			lp.IsUnlocked = true
		}); err != nil {
			log.Printf("Error unlocking first lesson: %v", err)
		}
	}

	return c.JSON(fiber.Map{"enrollment_id": enrollment.ID})
}

// MyCourses lists the courses the calling user is enrolled in.
func (ctrl *Controller) MyCourses(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	var enrollments []models.Enrollment
	if err := ctrl.Db.Where("user_id = ?", user.ID).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	courses := []models.Course{}
	if len(enrollments) > 0 {
		courseIDs := make([]string, len(enrollments))
		for i, e := range enrollments {
			courseIDs[i] = e.CourseID
		}
		if err := ctrl.Db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
		}
	}

	return c.JSON(courses)
}
