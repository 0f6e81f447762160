package main

import (
	"github.com/gin-gonic/gin"

	"dogstudio/internal/config"
	"dogstudio/internal/database"
	"dogstudio/internal/logger"
	"dogstudio/internal/mailer"
	"dogstudio/internal/middleware"
	"dogstudio/internal/modules/admin"
	"dogstudio/internal/modules/auth"
	"dogstudio/internal/modules/booking"
	catalogmod "dogstudio/internal/modules/catalog"
	jwtsvc "dogstudio/internal/pkg/jwt"
	"dogstudio/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		logger.ErrorLogger.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	var sender mailer.Sender
	switch {
	case cfg.EmailEndpoint != "":
		sender = mailer.NewHTTPSender(cfg.EmailEndpoint, cfg.EmailToken)
	case cfg.SMTPHost != "":
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	default:
		logger.InfoLogger.Info("No email transport configured, emails will be dropped")
	}

	dispatcher := mailer.NewDispatcher(mailer.NewService(sender), 64)
	defer dispatcher.Close()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, dispatcher)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingRepo, dispatcher)
	adminHandler := admin.NewHandler(adminService)

	catalogHandler := catalogmod.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		authHandler.RegisterRoutes(v1)

		// admin dashboard
		protected := v1.Group("/admin")
		protected.Use(middleware.RequireAdmin(authService))
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		logger.ErrorLogger.Fatal(err)
	}
}
