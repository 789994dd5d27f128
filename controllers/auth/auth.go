package authController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edtech/config"
	"edtech/middleware"
	"edtech/models"
)

type Controller struct {
	Db  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{Db: db, Cfg: cfg}
}

// RequestOTP records the fixed mock code for the phone and echoes it back.
// One OTP row per phone, overwritten on every request.
func (ctrl *Controller) RequestOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOTPRequest").(*struct {
		Phone string `json:"phone" validate:"required,min=4,max=15"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	otp := ctrl.Cfg.OTPCode

	var record models.OTP
	err := ctrl.Db.Where("phone = ?", reqData.Phone).First(&record).Error
	if err == nil {
		record.Code = otp
		err = ctrl.Db.Save(&record).Error
	} else {
		record = models.OTP{Phone: reqData.Phone, Code: otp}
		err = ctrl.Db.Create(&record).Error
	}
	if err != nil {
		log.Printf("Error saving OTP record: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create OTP!")
	}

	return c.JSON(fiber.Map{
		"message":   "OTP sent",
		"debug_otp": otp,
	})
}

// VerifyOTP matches the stored code exactly. The first successful
// verification for a phone creates a student account with placeholder
// name/email derived from the number.
func (ctrl *Controller) VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOTPVerify").(*struct {
		Phone string `json:"phone" validate:"required,min=4,max=15"`
		OTP   string `json:"otp" validate:"required"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var record models.OTP
	if err := ctrl.Db.Where("phone = ?", reqData.Phone).First(&record).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid OTP")
	}
	if record.Code != reqData.OTP {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid OTP")
	}

	var user models.User
	err := ctrl.Db.Where("phone = ?", reqData.Phone).First(&user).Error
	if err != nil {
		last4 := reqData.Phone
		if len(last4) > 4 {
			last4 = last4[len(last4)-4:]
		}
		user = models.User{
			Name:  "Learner " + last4,
			Email: fmt.Sprintf("user%s@example.com", last4),
			Phone: reqData.Phone,
			Role:  models.RoleStudent,
		}
		if err := ctrl.Db.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user!")
		}
	}

	token, err := middleware.GenerateJWT(ctrl.Cfg.JWTKey, user.ID, user.Role)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"user_id": user.ID,
		"role":    user.Role,
		"token":   token,
	})
}
