package gym

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/gym"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/usecase/quota"
)

type Overview struct {
	Gym   *models.Gym
	Plan  plan.Plan
	Usage quota.Usage
}

type GetOverview struct {
	repo   domain.Repository
	quotas *quota.Service
}

func NewGetOverview(repo domain.Repository, quotas *quota.Service) *GetOverview {
	return &GetOverview{repo: repo, quotas: quotas}
}

func (uc *GetOverview) Execute(ctx context.Context, gymID uuid.UUID) (*Overview, error) {
	g, err := uc.repo.GetByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	usage, err := uc.quotas.Usage(ctx, gymID)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Gym:   g,
		Plan:  plan.Resolve(g.Plan),
		Usage: usage,
	}, nil
}
