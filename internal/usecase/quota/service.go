package quota

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// Store is the read side the quota checks need. Every call hits storage;
// nothing is cached, so plan changes apply on the next check.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Gym, error)
	CountMembers(ctx context.Context, gymID uuid.UUID) (int64, error)
	CountStaff(ctx context.Context, gymID uuid.UUID) (int64, error)
}

type Usage struct {
	Members int64 `json:"members"`
	Staff   int64 `json:"staff"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetPlan fails with tenant_not_found when the gym does not exist.
func (s *Service) GetPlan(ctx context.Context, gymID uuid.UUID) (plan.Plan, error) {
	gym, err := s.store.GetByID(ctx, gymID)
	if err != nil {
		return plan.Plan{}, err
	}
	return plan.Resolve(gym.Plan), nil
}

func (s *Service) CanAddMember(ctx context.Context, gymID uuid.UUID) (plan.Decision, error) {
	p, err := s.GetPlan(ctx, gymID)
	if err != nil {
		return plan.Decision{}, err
	}
	n, err := s.store.CountMembers(ctx, gymID)
	if err != nil {
		return plan.Decision{}, err
	}
	return p.CanAddMember(n), nil
}

func (s *Service) CanAddStaff(ctx context.Context, gymID uuid.UUID) (plan.Decision, error) {
	p, err := s.GetPlan(ctx, gymID)
	if err != nil {
		return plan.Decision{}, err
	}
	n, err := s.store.CountStaff(ctx, gymID)
	if err != nil {
		return plan.Decision{}, err
	}
	return p.CanAddStaff(n), nil
}

func (s *Service) HasFeature(ctx context.Context, gymID uuid.UUID, f plan.Feature) (bool, error) {
	p, err := s.GetPlan(ctx, gymID)
	if err != nil {
		return false, err
	}
	return p.Has(f), nil
}

func (s *Service) Usage(ctx context.Context, gymID uuid.UUID) (Usage, error) {
	members, err := s.store.CountMembers(ctx, gymID)
	if err != nil {
		return Usage{}, err
	}
	staff, err := s.store.CountStaff(ctx, gymID)
	if err != nil {
		return Usage{}, err
	}
	return Usage{Members: members, Staff: staff}, nil
}
