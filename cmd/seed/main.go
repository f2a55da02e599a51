// Command seed creates a demo user with an empty wallet so the top-up flow
// can be exercised locally.
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"tixora/internal/config"
	"tixora/internal/models"
	"tixora/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx := context.Background()
	users := repositories.NewUserRepository(repositories.DB)
	wallets := repositories.NewWalletRepository(repositories.DB)

	password := config.GetEnv("SEED_PASSWORD", "ChangeMe123!")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    config.GetEnv("SEED_EMAIL", "organizer@tixora.dev"),
		Name:     "Demo Organizer",
		Password: string(hashed),
		IsActive: true,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	wlt := &models.Wallet{UserID: user.ID}
	if err := wallets.Create(ctx, wlt); err != nil {
		log.Fatalf("Failed to seed wallet: %v", err)
	}

	log.Printf("Seeded user %s with wallet %s", user.ID, wlt.ID)
}
