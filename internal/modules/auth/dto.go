package auth

import "dogstudio/internal/domain"

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}
