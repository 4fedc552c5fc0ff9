package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// Filter narrows an audit listing; zero values apply no filter.
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time

	Offset int
	Limit  int
}

type Repository interface {
	List(
		ctx context.Context,
		gymID uuid.UUID,
		f Filter,
	) ([]models.AuditLog, int64, error)
}
