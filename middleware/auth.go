package middleware

import (
	"context"
	"strings"

	"slotbook/config"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextToken  = "token"
)

// Authenticator resolves a raw token to a verified caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.Identity, error)
}

// ExtractToken reads the token from the Authorization header, falling back to
// the auth cookie.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); token != "" {
			return token
		}
	}
	if token, err := c.Cookie(cookieName()); err == nil {
		return token
	}
	return ""
}

func cookieName() string {
	if config.AppConfig.AuthCookieName != "" {
		return config.AppConfig.AuthCookieName
	}
	return "auth_token"
}

// RequireAuth accepts any valid, unrevoked token.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRole, identity.Role)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireRole accepts a valid token whose role equals role.
func RequireRole(auth Authenticator, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if identity.Role != role {
			utils.RespondError(c, utils.Forbidden("Access denied. Only %ss can access this route.", role))
			return
		}
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRole, identity.Role)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CallerID returns the authenticated subject set by RequireAuth or RequireRole.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
