// Package routes wires handlers onto the fiber application.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"tixora/internal/handlers"
	"tixora/internal/middleware"
)

// Setup registers every route group.
func Setup(app *fiber.App, walletHandler *handlers.WalletHandler, ruleHandler *handlers.RefundRuleHandler) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Auth())
	wallet.Get("/", walletHandler.GetWallet)
	wallet.Post("/topup", walletHandler.CreateTopUp)
	wallet.Get("/transactions", walletHandler.GetTransactionHistory)

	rules := api.Group("/refund-rules")
	rules.Get("/", ruleHandler.GetRuleRefund)

	adminRules := api.Group("/refund-rules", middleware.Auth())
	adminRules.Post("/", ruleHandler.CreateRule)
	adminRules.Put("/:id", ruleHandler.UpdateRule)
	adminRules.Delete("/:id", ruleHandler.DeleteRule)
	adminRules.Post("/:id/details", ruleHandler.CreateRuleDetail)
	adminRules.Put("/:id/details/:detailId", ruleHandler.UpdateRuleDetail)
	adminRules.Delete("/:id/details/:detailId", ruleHandler.DeleteRuleDetail)
}
