package middleware

import (
	"net/http"
	"strings"

	"rentals-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida el JWT token en cada request.
// Los invitados también pasan: su token lleva is_guest en true.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obtener el header "Authorization"
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header required",
			})
			c.Abort()
			return
		}

		// Formato esperado: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header format",
			})
			c.Abort()
			return
		}

		// Validar el token
		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			c.Abort()
			return
		}

		// Guardar la info del usuario en el contexto
		// Así los endpoints pueden saber quién hizo la request
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("is_guest", claims.IsGuest)

		c.Next()
	}
}
