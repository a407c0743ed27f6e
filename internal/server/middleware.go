package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"listing-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AdminAuthMiddleware validates a Bearer JWT signed with the configured
// admin secret. Only HMAC tokens are accepted.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.JSONError(c, 401, errors.New("missing bearer token"), "authorization required")
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, 401, fmt.Errorf("invalid admin token: %w", err), "invalid or expired token")
			utils.Warn("AdminAuthMiddleware: rejected request", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
