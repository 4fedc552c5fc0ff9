package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/fee"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type FeeGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*FeeGormRepository)(nil)

func NewFeeGormRepository(db *gorm.DB) *FeeGormRepository {
	return &FeeGormRepository{db: db}
}

func (r *FeeGormRepository) GetMember(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
) (*models.Member, error) {
	return findMember(r.db.WithContext(ctx), gymID, memberID)
}

func (r *FeeGormRepository) Create(
	ctx context.Context,
	f *models.Fee,
) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeeGormRepository) ListByMember(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
) ([]models.Fee, error) {

	var fees []models.Fee
	if err := r.db.WithContext(ctx).
		Where("member_id = ? AND gym_id = ?", memberID, gymID).
		Order("created_at DESC").
		Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

func (r *FeeGormRepository) ListForGym(
	ctx context.Context,
	gymID uuid.UUID,
	offset int,
	limit int,
) ([]models.Fee, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Fee{}).
		Where("gym_id = ?", gymID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fees []models.Fee
	if err := q.
		Preload("Member", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "phone", "email")
		}).
		Preload("TakenBy", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "username", "email", "role")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&fees).Error; err != nil {
		return nil, 0, err
	}
	return fees, total, nil
}

func (r *FeeGormRepository) ListBetween(
	ctx context.Context,
	gymID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Fee, error) {

	q := r.db.WithContext(ctx).Where("gym_id = ?", gymID)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}

	var fees []models.Fee
	if err := q.Order("created_at ASC").Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}
