package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token for browser clients
const SessionCookie = "board_session"

const identityKey = "identity"

// OptionalAuth resolves the caller from a session cookie or Bearer token.
// Requests without a valid token continue anonymously.
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := jwtManager.VerifyToken(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid session token with 401
func RequireAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing session token", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Session expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Invalid session token", err)
			}
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// GetIdentity returns the caller resolved by the auth middleware, or nil
func GetIdentity(c *gin.Context) *domain.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, _ := v.(*domain.Identity)
	return identity
}

// extractToken checks the session cookie first, then the Authorization header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(identityKey, &domain.Identity{UserID: claims.UserID, Username: claims.Username})
	c.Set("userID", claims.UserID)
}
