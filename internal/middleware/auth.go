package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dogstudio/internal/domain"
	"dogstudio/internal/modules/auth"
	"dogstudio/internal/pkg/response"
)

// SessionResolver resolves a bearer token to the session behind it.
type SessionResolver interface {
	Current(token string) (*auth.Session, error)
}

// RequireAdmin guards the dashboard routes: a valid, unrevoked session with
// the admin role must stand behind the bearer token.
func RequireAdmin(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		sess, err := sessions.Current(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		if sess.Role != string(domain.RoleAdmin) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("role", sess.Role)

		c.Next()
	}
}
