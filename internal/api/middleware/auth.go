package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alfredhq/alfred/internal/api/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// JWTAuth accepts "Authorization: Bearer <token>" signed with secret and
// stores the token's user_id under UserIDKey.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
