package walletRoutes

import (
	"github.com/gofiber/fiber/v2"

	walletController "edtech/controllers/wallet"
	"edtech/middleware"
	walletValidator "edtech/validators/wallet"
)

func SetupWalletRoutes(app *fiber.App, ctrl *walletController.Controller, auth *middleware.Auth) {
	walletGroup := app.Group("/api/wallet", auth.CurrentUser)

	walletGroup.Get("/", ctrl.GetWallet)
	walletGroup.Post("/buy-coins", walletValidator.BuyCoins(), ctrl.BuyCoins)
	walletGroup.Post("/exchange-points", walletValidator.ExchangePoints(), ctrl.ExchangePoints)
	walletGroup.Get("/transactions", ctrl.ListTransactions)
}
