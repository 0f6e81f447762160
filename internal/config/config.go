package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"dogstudio/internal/logger"
)

// Config carries everything the service reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// Outbound email. When EmailEndpoint is set the HTTP sender is used;
	// otherwise SMTP, when configured. Neither set means emails are logged
	// and dropped.
	EmailEndpoint string
	EmailToken    string
	EmailFrom     string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.InfoLogger.Info("No .env file found, using environment variables")
	}

	cfg := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "dogstudio.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        24 * time.Hour,
		EmailEndpoint: os.Getenv("EMAIL_ENDPOINT"),
		EmailToken:    os.Getenv("EMAIL_TOKEN"),
		EmailFrom:     getEnv("EMAIL_FROM", "DogStudio <onboarding@resend.dev>"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		cfg.JWTTTL = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
