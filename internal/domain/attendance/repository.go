package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// Range is an inclusive day filter; nil bounds are open.
type Range struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	GetMember(
		ctx context.Context,
		gymID uuid.UUID,
		memberID uuid.UUID,
	) (*models.Member, error)

	ExistsForDay(
		ctx context.Context,
		gymID uuid.UUID,
		memberID uuid.UUID,
		day time.Time,
	) (bool, error)

	Create(
		ctx context.Context,
		a *models.Attendance,
	) error

	ListByMember(
		ctx context.Context,
		gymID uuid.UUID,
		memberID uuid.UUID,
		r Range,
	) ([]models.Attendance, error)

	// ListByDay preloads the member and the marking user, newest first.
	ListByDay(
		ctx context.Context,
		gymID uuid.UUID,
		day time.Time,
	) ([]models.Attendance, error)

	GetForGym(
		ctx context.Context,
		gymID uuid.UUID,
		id uuid.UUID,
	) (*models.Attendance, error)

	UpdateStatus(
		ctx context.Context,
		a *models.Attendance,
		status Status,
	) error
}
