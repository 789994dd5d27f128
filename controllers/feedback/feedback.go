package feedbackController

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

// Create records feedback from the calling user.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		UserID  string `json:"user_id" validate:"required,uuid"`
		Message string `json:"message" validate:"required"`
		Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
		Context string `json:"context"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.UserID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Cannot submit for another user")
	}

	feedback := models.Feedback{
		UserID:  user.ID,
		Message: reqData.Message,
		Rating:  reqData.Rating,
		Context: reqData.Context,
	}
	if err := ctrl.Db.Create(&feedback).Error; err != nil {
		log.Printf("Error saving feedback: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save feedback!")
	}

	return c.JSON(fiber.Map{"feedback_id": feedback.ID})
}
