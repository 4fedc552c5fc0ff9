package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/account"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, actor access.Identity) (*models.User, error) {
	return uc.repo.GetByID(ctx, actor.UserID)
}

type ListStaff struct {
	repo domain.Repository
}

func NewListStaff(repo domain.Repository) *ListStaff {
	return &ListStaff{repo: repo}
}

func (uc *ListStaff) Execute(ctx context.Context, gymID uuid.UUID) ([]models.User, error) {
	return uc.repo.ListStaff(ctx, gymID)
}
