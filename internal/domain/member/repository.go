package member

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// Filter narrows a member listing. An empty Search applies no filter.
type Filter struct {
	Search string
	Offset int
	Limit  int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Pattern is the case-insensitive substring pattern for Search, with LIKE
// metacharacters escaped by a backslash.
func (f Filter) Pattern() string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(f.Search))) + "%"
}

type Repository interface {
	// CreateWithinQuota counts the gym's members and inserts m in one
	// transaction, holding a lock on the gym row.
	CreateWithinQuota(
		ctx context.Context,
		m *models.Member,
		check plan.Check,
	) error

	List(
		ctx context.Context,
		gymID uuid.UUID,
		f Filter,
	) ([]models.Member, int64, error)

	GetForGym(
		ctx context.Context,
		gymID uuid.UUID,
		id uuid.UUID,
	) (*models.Member, error)

	Update(
		ctx context.Context,
		m *models.Member,
	) error
}
