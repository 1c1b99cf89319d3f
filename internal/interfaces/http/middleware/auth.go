package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-pay.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// CreatorIDKey is the context key for the authenticated creator ID
	CreatorIDKey = "creatorId"
	// CreatorEmailKey is the context key for the authenticated creator email
	CreatorEmailKey = "creatorEmail"
	// CreatorRoleKey is the context key for the authenticated creator role
	CreatorRoleKey = "creatorRole"
)

// AuthMiddleware creates a new authentication middleware
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			log.Printf("[AuthMiddleware] Request to %s failed: Authorization header is missing", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			log.Printf("[AuthMiddleware] Request to %s failed: Invalid authorization format", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("[AuthMiddleware] Request to %s failed: %v", c.Request.URL.Path, err)
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(CreatorIDKey, claims.CreatorID)
		c.Set(CreatorEmailKey, claims.Email)
		c.Set(CreatorRoleKey, claims.Role)

		// Mirror the creator id into the request context so zap log lines
		// downstream carry it.
		ctx := context.WithValue(c.Request.Context(), "creator_id", claims.CreatorID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCreatorID gets the authenticated creator ID from context
func GetCreatorID(c *gin.Context) (uuid.UUID, bool) {
	creatorID, exists := c.Get(CreatorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return creatorID.(uuid.UUID), true
}

// GetCreatorEmail gets the authenticated creator email from context
func GetCreatorEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(CreatorEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetCreatorRole gets the authenticated creator role from context
func GetCreatorRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(CreatorRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole creates a middleware that requires a specific role
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		creatorRole, exists := GetCreatorRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Creator role not found",
			})
			return
		}

		for _, role := range roles {
			if creatorRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}
