package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/auth"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

type SuperUserChecker interface {
	SuperUserExists(ctx context.Context) (bool, error)
}

// SuperUserOrBootstrap guards platform account creation. It requires a
// SUPER_USER token, except when bootstrap is enabled and no SUPER_USER exists
// yet; then a request without a token passes with no identity set.
func SuperUserOrBootstrap(
	tokens *auth.TokenIssuer,
	users SuperUserChecker,
	bootstrap bool,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, hasToken := bearerToken(c)

		if !hasToken && bootstrap {
			exists, err := users.SuperUserExists(c.Request.Context())
			if err != nil {
				abort(c, err)
				return
			}
			if !exists {
				c.Next()
				return
			}
		}

		if !hasToken {
			abort(c, httperr.ErrUnauthorized)
			return
		}

		id, err := tokens.Parse(raw)
		if err != nil {
			abort(c, httperr.ErrInvalidToken)
			return
		}
		if !access.Authorize(id.Role, access.RoleSuperUser) {
			abort(c, httperr.ErrForbidden)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}
