package notificationController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

// List returns the caller's notifications, newest first.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	var items []models.Notification
	if err := ctrl.Db.Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications!")
	}

	return c.JSON(items)
}

// MarkRead flags one of the caller's notifications as read.
func (ctrl *Controller) MarkRead(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id")
	}

	var note models.Notification
	if err := ctrl.Db.Where("id = ?", id).First(&note).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Notification not found")
	}
	if note.UserID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Cannot read another user's notification")
	}

	note.IsRead = true
	if err := ctrl.Db.Save(&note).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update notification!")
	}

	return c.JSON(fiber.Map{"ok": true})
}
