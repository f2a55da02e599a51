// Package main is the entry point for the ticketing financial-core service.
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/stripe/stripe-go/v72"

	"tixora/internal/config"
	"tixora/internal/handlers"
	"tixora/internal/repositories"
	"tixora/internal/routes"
	"tixora/internal/services/paymentlink"
	"tixora/internal/services/refundrule"
	"tixora/internal/services/wallet"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")
	provider := paymentlink.NewStripeProvider(config.GetEnv("PAYMENT_CURRENCY", "usd"))

	uow := repositories.NewUnitOfWork(repositories.DB)
	walletRepo := repositories.NewWalletRepository(repositories.DB)
	txnRepo := repositories.NewWalletTransactionRepository(repositories.DB)
	ruleRepo := repositories.NewRefundRuleRepository(repositories.DB)

	walletService := wallet.NewService(uow, walletRepo, txnRepo, provider, repositories.CacheService, wallet.Config{
		CancelURL: config.GetEnv("PAYMENT_CANCEL_URL", "http://localhost:3000/wallet/cancel"),
		ReturnURL: config.GetEnv("PAYMENT_RETURN_URL", "http://localhost:3000/wallet/return"),
	})
	ruleService := refundrule.NewService(uow, ruleRepo, repositories.CacheService)

	app := fiber.New(fiber.Config{
		AppName:      "tixora",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 100),
		Expiration: time.Minute,
	}))

	routes.Setup(app,
		handlers.NewWalletHandler(walletService),
		handlers.NewRefundRuleHandler(ruleService),
	)

	port := config.GetEnv("PORT", "8080")
	log.Printf("Starting server on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
