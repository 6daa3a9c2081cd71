package middleware

import (
	"net/http"
	"strings"

	userRepo "cleanly/database/repository/user"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by Authenticate for downstream handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// Authenticate verifies the bearer token, rejects revoked sessions, and
// attaches the caller's id and current role to the request context. The role
// comes from the user record, not the token, so an admin demotion takes
// effect on the next request.
func Authenticate(tokens *utils.JWTManager, users userRepo.UserRepository, auth *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := tokens.Subject(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid token"})
			return
		}

		revoked, err := utils.IsTokenRevoked(auth, utils.HashToken(tokenString))
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Session expired"})
			return
		}

		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxRole, user.Role)
		c.Next()
	}
}
