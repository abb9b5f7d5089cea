package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/security"
)

const currentUserKey = "current_user"

// UserFinder resolves the token subject back to a stored user.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Auth validates the bearer token and loads the subject user into the
// context. Tokens are stateless: a valid signature plus unexpired claims is
// sufficient, but the user must still exist and be active.
func Auth(secret string, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), claims.Email())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user_inactive"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid bearer token is present and
// silently continues otherwise. Used on public endpoints that link the
// acting user when one is known.
func OptionalAuth(secret string, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := security.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), claims.Email())
		if err == nil && user.IsActive {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
