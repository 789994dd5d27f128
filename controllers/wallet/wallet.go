package walletController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edtech/middleware"
	"edtech/models"
	"edtech/services/payment"
)

// CoinToPoints is the fixed exchange rate: 100 points buy 1 coin.
const CoinToPoints = 100

type Controller struct {
	Db      *gorm.DB
	Payment *payment.Client
}

func New(db *gorm.DB, pay *payment.Client) *Controller {
	return &Controller{Db: db, Payment: pay}
}

// GetWallet returns the caller's current balances.
func (ctrl *Controller) GetWallet(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	var fresh models.User
	if err := ctrl.Db.Where("id = ?", user.ID).First(&fresh).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch wallet!")
	}

	return c.JSON(fiber.Map{
		"coins":  fresh.Coins,
		"points": fresh.Points,
	})
}

// BuyCoins charges the payment gateway (mocked by default) and credits the
// coin balance with a single-row atomic increment, appending a ledger entry
// and a notification.
func (ctrl *Controller) BuyCoins(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	reqData, ok := c.Locals("validatedBuyCoins").(*struct {
		Coins int `json:"coins" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	reference, err := ctrl.Payment.Charge(user.ID, reqData.Coins)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "Payment failed!")
	}

	if err := ctrl.Db.Model(&models.User{}).Where("id = ?", user.ID).
		UpdateColumn("coins", gorm.Expr("coins + ?", reqData.Coins)).Error; err != nil {
		log.Printf("Error crediting coins: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add coins!")
	}

	ctrl.appendLedger(models.Transaction{
		UserID:    user.ID,
		Type:      models.TransactionTypeBuyCoins,
		Amount:    reqData.Coins,
		Status:    models.TransactionStatusSuccess,
		Reference: reference,
		Meta:      datatypes.JSONMap{"provider": ctrl.Payment.Provider()},
	}, models.Notification{
		UserID:  user.ID,
		Title:   "Payment Successful",
		Message: fmt.Sprintf("Added %d coins", reqData.Coins),
		Type:    models.NotificationSuccess,
	})

	var fresh models.User
	if err := ctrl.Db.Where("id = ?", user.ID).First(&fresh).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch wallet!")
	}

	return c.JSON(fiber.Map{
		"coins":   fresh.Coins,
		"message": "Coins added",
	})
}

// ExchangePoints converts points to coins at the fixed rate, truncating
// toward zero; the remainder stays on the points balance. Both balances
// move in one atomic single-row update.
func (ctrl *Controller) ExchangePoints(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	reqData, ok := c.Locals("validatedExchangePoints").(*struct {
		Points int `json:"points" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	coins := reqData.Points / CoinToPoints
	if coins <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Not enough points for 1 coin")
	}
	spent := coins * CoinToPoints

	// Balance precheck; not atomic with the update below.
	if user.Points < spent {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Insufficient points balance")
	}

	if err := ctrl.Db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"points": gorm.Expr("points - ?", spent),
			"coins":  gorm.Expr("coins + ?", coins),
		}).Error; err != nil {
		log.Printf("Error exchanging points: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to exchange points!")
	}

	ctrl.appendLedger(models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionTypeExchangePoints,
		Amount: reqData.Points,
		Status: models.TransactionStatusSuccess,
	}, models.Notification{
		UserID:  user.ID,
		Title:   "Exchange Successful",
		Message: fmt.Sprintf("Converted %d points to %d coins", spent, coins),
		Type:    models.NotificationSuccess,
	})

	var fresh models.User
	if err := ctrl.Db.Where("id = ?", user.ID).First(&fresh).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch wallet!")
	}

	return c.JSON(fiber.Map{
		"coins":  fresh.Coins,
		"points": fresh.Points,
	})
}

// ListTransactions returns the caller's ledger, newest first.
func (ctrl *Controller) ListTransactions(c *fiber.Ctx) error {
	user := middleware.LocalUser(c)

	var transactions []models.Transaction
	if err := ctrl.Db.Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch transactions!")
	}

	return c.JSON(transactions)
}

// appendLedger records the transaction and notification for a completed
// wallet op. Failures are logged, not surfaced: the balance change already
// happened.
func (ctrl *Controller) appendLedger(tx models.Transaction, note models.Notification) {
	if err := ctrl.Db.Create(&tx).Error; err != nil {
		log.Printf("Error saving transaction: %v", err)
	}
	if err := ctrl.Db.Create(&note).Error; err != nil {
		log.Printf("Error saving notification: %v", err)
	}
}
