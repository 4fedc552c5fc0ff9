package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// lockTenantPlan takes a row lock on the gym inside tx and returns its plan.
// Concurrent creators for the same gym serialize here until tx ends.
func lockTenantPlan(tx *gorm.DB, gymID uuid.UUID) (plan.Plan, error) {
	var gym models.Gym
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "plan").
		Where("id = ?", gymID).
		First(&gym).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return plan.Plan{}, httperr.ErrTenantNotFound
		}
		return plan.Plan{}, err
	}
	return plan.Resolve(gym.Plan), nil
}

// createWithinQuota runs count and insert under the tenant lock.
func createWithinQuota(
	tx *gorm.DB,
	gymID uuid.UUID,
	check plan.Check,
	count func(tx *gorm.DB) (int64, error),
	insert func(tx *gorm.DB) error,
) error {
	p, err := lockTenantPlan(tx, gymID)
	if err != nil {
		return err
	}

	current, err := count(tx)
	if err != nil {
		return err
	}

	if d := check(p, current); !d.Allowed {
		return httperr.PlanLimitExceeded(d.Reason)
	}

	return insert(tx)
}

// notFound swaps gorm's miss for a domain error.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
