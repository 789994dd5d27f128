package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
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

// ListUsers returns all user records.
func (ctrl *Controller) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := ctrl.Db.Find(&users).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch users!")
	}
	return c.JSON(users)
}

// UnlockLesson force-unlocks a lesson for a user, bypassing the quiz gate.
func (ctrl *Controller) UnlockLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUnlock").(*struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		LessonID string `json:"lesson_id" validate:"required,uuid"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var lesson models.Lesson
	if err := ctrl.Db.Where("id = ?", reqData.LessonID).First(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found")
	}

	var lp models.LessonProgress
	err := ctrl.Db.Where("user_id = ? AND lesson_id = ?", reqData.UserID, reqData.LessonID).
		First(&lp).Error
	if err != nil {
		lp = models.LessonProgress{
			UserID:   reqData.UserID,
			CourseID: lesson.CourseID,
			LessonID: reqData.LessonID,
		}
	}
	lp.IsUnlocked = true
	if err := ctrl.Db.Save(&lp).Error; err != nil {
		log.Printf("Error saving lesson progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to unlock lesson!")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ProgressReport returns every progress record for a course.
func (ctrl *Controller) ProgressReport(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(string)

	var items []models.LessonProgress
	if err := ctrl.Db.Where("course_id = ?", courseID).Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress!")
	}

	return c.JSON(items)
}

// EnrollmentSummary reports enrollment counts over calendar windows.
func (ctrl *Controller) EnrollmentSummary(c *fiber.Ctx) error {
	model := ctrl.Db.Model(&models.Enrollment{})

	var total, today, thisWeek, thisMonth int64
	if err := model.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch summary!")
	}
	ctrl.Db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&today)
	ctrl.Db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfWeek()).Count(&thisWeek)
	ctrl.Db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfMonth()).Count(&thisMonth)

	return c.JSON(fiber.Map{
		"total_enrollments": total,
		"today":             today,
		"this_week":         thisWeek,
		"this_month":        thisMonth,
	})
}
