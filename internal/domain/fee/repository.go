package fee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type Repository interface {
	GetMember(
		ctx context.Context,
		gymID uuid.UUID,
		memberID uuid.UUID,
	) (*models.Member, error)

	Create(
		ctx context.Context,
		f *models.Fee,
	) error

	ListByMember(
		ctx context.Context,
		gymID uuid.UUID,
		memberID uuid.UUID,
	) ([]models.Fee, error)

	// ListForGym preloads member and taker, newest first.
	ListForGym(
		ctx context.Context,
		gymID uuid.UUID,
		offset int,
		limit int,
	) ([]models.Fee, int64, error)

	// ListBetween filters on created_at; zero bounds are open.
	ListBetween(
		ctx context.Context,
		gymID uuid.UUID,
		from time.Time,
		to time.Time,
	) ([]models.Fee, error)
}
