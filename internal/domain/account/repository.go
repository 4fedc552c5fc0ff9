package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type Repository interface {
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	GymExists(
		ctx context.Context,
		gymID uuid.UUID,
	) (bool, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error

	// CreateStaffWithinQuota counts the gym's staff and inserts u in one
	// transaction, holding a lock on the gym row.
	CreateStaffWithinQuota(
		ctx context.Context,
		u *models.User,
		check plan.Check,
	) error

	ListStaff(
		ctx context.Context,
		gymID uuid.UUID,
	) ([]models.User, error)

	SuperUserExists(ctx context.Context) (bool, error)
}
