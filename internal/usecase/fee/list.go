package fee

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/fee"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type ListMemberFees struct {
	repo domain.Repository
}

func NewListMemberFees(repo domain.Repository) *ListMemberFees {
	return &ListMemberFees{repo: repo}
}

// Execute fails with member_not_found for members outside the gym.
func (uc *ListMemberFees) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
) ([]models.Fee, error) {

	if _, err := uc.repo.GetMember(ctx, gymID, memberID); err != nil {
		return nil, err
	}
	return uc.repo.ListByMember(ctx, gymID, memberID)
}

type ListFees struct {
	repo domain.Repository
}

func NewListFees(repo domain.Repository) *ListFees {
	return &ListFees{repo: repo}
}

func (uc *ListFees) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	offset int,
	limit int,
) ([]models.Fee, int64, error) {
	return uc.repo.ListForGym(ctx, gymID, offset, limit)
}
