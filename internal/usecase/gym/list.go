package gym

import (
	"context"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/gym"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type ListGyms struct {
	repo domain.Repository
}

func NewListGyms(repo domain.Repository) *ListGyms {
	return &ListGyms{repo: repo}
}

func (uc *ListGyms) Execute(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Gym, int64, error) {
	return uc.repo.List(ctx, offset, limit)
}
