package gym

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		g *models.Gym,
	) error

	GetByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Gym, error)

	List(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Gym, int64, error)

	Update(
		ctx context.Context,
		g *models.Gym,
	) error

	CountMembers(
		ctx context.Context,
		gymID uuid.UUID,
	) (int64, error)

	CountStaff(
		ctx context.Context,
		gymID uuid.UUID,
	) (int64, error)
}
