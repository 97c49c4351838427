package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	pkgAuth "github.com/chlagouGhassen/pizza-petes/internal/pkg/auth"
)

const (
	// AccountIDContextKey is a gin context key for authenticated account identifier.
	AccountIDContextKey = "accountID"
	authCookieName      = "pizzapetes_token"
)

// TokenParser resolves a bearer token to an account identifier.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AccountSource resolves account identifiers to account records.
type AccountSource interface {
	Account(ctx context.Context, id int64) (*model.Account, error)
}

// AuthRequired ensures the caller is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		accountID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(AccountIDContextKey, accountID)
		c.Next()
	}
}

// AdminRequired allows only accounts flagged as admin. Must run after
// AuthRequired.
func AdminRequired(accounts AccountSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(AccountIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		accountID, _ := val.(int64)

		account, err := accounts.Account(c.Request.Context(), accountID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !account.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
