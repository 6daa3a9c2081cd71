package middleware

import (
	"net/http"

	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the given roles. Must run after
// Authenticate has attached the caller's role.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Forbidden"})
	}
}
