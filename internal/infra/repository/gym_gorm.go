package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/gym"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type GymGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*GymGormRepository)(nil)

func NewGymGormRepository(db *gorm.DB) *GymGormRepository {
	return &GymGormRepository{db: db}
}

func (r *GymGormRepository) Create(
	ctx context.Context,
	g *models.Gym,
) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GymGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Gym, error) {

	var gym models.Gym
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gym).Error; err != nil {
		return nil, notFound(err, httperr.ErrTenantNotFound)
	}
	return &gym, nil
}

func (r *GymGormRepository) List(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Gym, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Gym{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gyms []models.Gym
	if err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&gyms).Error; err != nil {
		return nil, 0, err
	}
	return gyms, total, nil
}

func (r *GymGormRepository) Update(
	ctx context.Context,
	g *models.Gym,
) error {
	return r.db.WithContext(ctx).
		Model(g).
		Select("plan", "status", "updated_at").
		Updates(g).Error
}

// --------------------------------------------------
// Counts
// --------------------------------------------------

func (r *GymGormRepository) CountMembers(
	ctx context.Context,
	gymID uuid.UUID,
) (int64, error) {
	return countMembers(r.db.WithContext(ctx), gymID)
}

func (r *GymGormRepository) CountStaff(
	ctx context.Context,
	gymID uuid.UUID,
) (int64, error) {
	return countStaff(r.db.WithContext(ctx), gymID)
}

func countMembers(db *gorm.DB, gymID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&models.Member{}).
		Where("gym_id = ?", gymID).
		Count(&n).Error
	return n, err
}

func countStaff(db *gorm.DB, gymID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&models.User{}).
		Where("gym_id = ? AND role = ?", gymID, access.RoleStaff).
		Count(&n).Error
	return n, err
}
