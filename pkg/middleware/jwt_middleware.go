package middleware

import (
	"net/http"
	"strings"

	"arboris/pkg/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware is the session verifier: it resolves the bearer token into
// an identity and aborts with 401 otherwise. Handlers behind it read
// "user_email" (and "user_id"/"role") from the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims.Email == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
