package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/pkg/jwt"
)

// Context keys cho identity của admin sau khi authenticate
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware - Middleware xác thực JWT bearer token
// Mọi admin-prefixed endpoint và upload endpoint đi qua đây
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		// Stateless trust: claims không được re-check lại store,
		// revocation chỉ có thể bằng cách đổi signing secret
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "Token invalid or expired"})
			c.Abort()
			return
		}

		// 4. Set identity vào context cho downstream handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}
