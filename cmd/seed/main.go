package main

import (
	"context"
	"os"

	"golang.org/x/crypto/bcrypt"

	"dogstudio/internal/config"
	"dogstudio/internal/database"
	"dogstudio/internal/domain"
	"dogstudio/internal/logger"
	"dogstudio/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.ErrorLogger.Fatal("DB connection failed: ", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	logger.InfoLogger.Info("Running AutoMigrate...")
	if err := bookingRepo.Migrate(); err != nil {
		logger.ErrorLogger.Fatal("AutoMigrate failed: ", err)
	}
	if err := userRepo.Migrate(); err != nil {
		logger.ErrorLogger.Fatal("AutoMigrate failed: ", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@dogstudio.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	ctx := context.Background()
	if existing, err := userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		logger.InfoLogger.Infof("Admin already exists: %s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}

	admin := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Studio Admin",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		logger.ErrorLogger.Fatal("Failed to create admin: ", err)
	}

	logger.InfoLogger.Infof("Admin created: %s", email)
}
