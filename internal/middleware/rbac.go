package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

// RequireRoles must run after AuthMiddleware.
func RequireRoles(allowed ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abort(c, httperr.ErrUnauthorized)
			return
		}

		if !access.Authorize(id.Role, allowed...) {
			abort(c, httperr.ErrForbidden)
			return
		}

		c.Next()
	}
}
