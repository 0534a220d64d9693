package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"outreach-backend/config"
	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"
	"outreach-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards the admin routes. Tokens are issued by the external
// auth provider (Supabase) and verified here with the shared HS256 secret;
// this service never issues or refreshes tokens itself.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.SupabaseJWTSecret == "" {
				return nil, fmt.Errorf("SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		})

		if err != nil || !token.Valid {
			requestID, _ := c.Get("RequestID")
			reqIDStr, _ := requestID.(string)
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventUnauthorizedAccess,
				IP:        c.ClientIP(),
				UserAgent: c.GetHeader("User-Agent"),
				RequestID: reqIDStr,
				Details:   map[string]interface{}{"path": c.FullPath()},
			})
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)

		// Propagate to the request context so code below the delivery
		// layer can attribute actions without depending on gin.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
