package auth

import (
	"context"

	"dogstudio/internal/domain"
	"dogstudio/internal/pkg/jwt"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
