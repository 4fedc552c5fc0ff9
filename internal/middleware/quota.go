package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
)

// QuotaChecker is the plan quota service as seen by the gates.
type QuotaChecker interface {
	CanAddMember(ctx context.Context, gymID uuid.UUID) (plan.Decision, error)
	CanAddStaff(ctx context.Context, gymID uuid.UUID) (plan.Decision, error)
	HasFeature(ctx context.Context, gymID uuid.UUID, f plan.Feature) (bool, error)
}

// RejectionCounter observes gate rejections; may be nil.
type RejectionCounter interface {
	QuotaRejected(kind string)
}

// QuotaGate builds the plan enforcement middlewares. They run after auth and
// role checks, and before any handler writes.
type QuotaGate struct {
	quotas  QuotaChecker
	counter RejectionCounter
}

func NewQuotaGate(quotas QuotaChecker, counter RejectionCounter) *QuotaGate {
	return &QuotaGate{quotas: quotas, counter: counter}
}

func (g *QuotaGate) MemberLimit() gin.HandlerFunc {
	return g.limit("member", g.quotas.CanAddMember)
}

func (g *QuotaGate) StaffLimit() gin.HandlerFunc {
	return g.limit("staff", g.quotas.CanAddStaff)
}

func (g *QuotaGate) RequireFeature(f plan.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		gymID, ok := tenantOf(c)
		if !ok {
			return
		}

		has, err := g.quotas.HasFeature(c.Request.Context(), gymID, f)
		if err != nil {
			abort(c, err)
			return
		}
		if !has {
			g.rejected("feature:" + string(f))
			abort(c, httperr.FeatureNotAvailable(string(f)))
			return
		}

		c.Next()
	}
}

func (g *QuotaGate) limit(
	kind string,
	check func(ctx context.Context, gymID uuid.UUID) (plan.Decision, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		gymID, ok := tenantOf(c)
		if !ok {
			return
		}

		d, err := check(c.Request.Context(), gymID)
		if err != nil {
			abort(c, err)
			return
		}
		if !d.Allowed {
			g.rejected(kind)
			abort(c, httperr.PlanLimitExceeded(d.Reason))
			return
		}

		c.Next()
	}
}

func (g *QuotaGate) rejected(kind string) {
	if g.counter != nil {
		g.counter.QuotaRejected(kind)
	}
}

// tenantOf aborts the request when the identity carries no gym.
func tenantOf(c *gin.Context) (uuid.UUID, bool) {
	id, ok := IdentityFrom(c)
	if !ok {
		abort(c, httperr.ErrUnauthorized)
		return uuid.Nil, false
	}
	gymID, ok := id.Tenant()
	if !ok {
		abort(c, httperr.Validation(
			"Gym id is required",
			httperr.FieldError{Field: "gymId", Issue: "required"},
		))
		return uuid.Nil, false
	}
	return gymID, true
}
