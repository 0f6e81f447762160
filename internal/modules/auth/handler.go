package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dogstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.SignIn)
	rg.POST("/auth/logout", h.SignOut)
	rg.GET("/auth/session", h.GetSession)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) SignOut(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.service.SignOut(token)
	}
	response.Success(c, http.StatusOK, gin.H{"signed_out": true})
}

// GetSession resolves the caller's session, or null when unauthenticated.
// Mirrors the store's getSession contract: absence is not an error.
func (h *Handler) GetSession(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Success(c, http.StatusOK, gin.H{"session": nil})
		return
	}

	sess, err := h.service.Current(token)
	if err != nil {
		response.Success(c, http.StatusOK, gin.H{"session": nil})
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
