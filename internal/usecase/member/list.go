package member

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/member"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type ListMembers struct {
	repo domain.Repository
}

func NewListMembers(repo domain.Repository) *ListMembers {
	return &ListMembers{repo: repo}
}

func (uc *ListMembers) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	f domain.Filter,
) ([]models.Member, int64, error) {
	return uc.repo.List(ctx, gymID, f)
}

type GetMember struct {
	repo domain.Repository
}

func NewGetMember(repo domain.Repository) *GetMember {
	return &GetMember{repo: repo}
}

func (uc *GetMember) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	id uuid.UUID,
) (*models.Member, error) {
	return uc.repo.GetForGym(ctx, gymID, id)
}
