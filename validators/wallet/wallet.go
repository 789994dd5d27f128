package walletValidator

import (
	"github.com/gofiber/fiber/v2"

	"edtech/middleware"
)

// BuyCoins validates a coin purchase request
func BuyCoins() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Coins int `json:"coins" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBuyCoins", reqData)
		return c.Next()
	}
}

// ExchangePoints validates a points exchange request
func ExchangePoints() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Points int `json:"points" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExchangePoints", reqData)
		return c.Next()
	}
}
