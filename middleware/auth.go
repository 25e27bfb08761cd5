package middleware

import (
	"net/http"
	"strings"

	"roomfinder/utils"

	"github.com/gin-gonic/gin"
)

// BearerAuthMiddleware extracts the bearer token from the Authorization
// header, validates it, and stores the token plus its identity claims on
// the request context. The raw token is kept so handlers can bind an API
// client to the caller's upstream session.
func BearerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("token", tokenString)
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("approvalStatus", claims.ApprovalStatus)
		c.Next()
	}
}

// RequireRole gates a route group on the caller's role claim.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
