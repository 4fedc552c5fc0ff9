package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/member"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type MemberGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*MemberGormRepository)(nil)

func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

func (r *MemberGormRepository) CreateWithinQuota(
	ctx context.Context,
	m *models.Member,
	check plan.Check,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createWithinQuota(
			tx,
			m.GymID,
			check,
			func(tx *gorm.DB) (int64, error) { return countMembers(tx, m.GymID) },
			func(tx *gorm.DB) error { return tx.Create(m).Error },
		)
	})
}

func (r *MemberGormRepository) List(
	ctx context.Context,
	gymID uuid.UUID,
	f domain.Filter,
) ([]models.Member, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("gym_id = ?", gymID)

	if f.Search != "" {
		p := f.Pattern()
		q = q.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(phone) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`,
			p, p, p,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Member
	if err := q.
		Order("created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *MemberGormRepository) GetForGym(
	ctx context.Context,
	gymID uuid.UUID,
	id uuid.UUID,
) (*models.Member, error) {
	return findMember(r.db.WithContext(ctx), gymID, id)
}

func (r *MemberGormRepository) Update(
	ctx context.Context,
	m *models.Member,
) error {
	return r.db.WithContext(ctx).
		Model(m).
		Where("gym_id = ?", m.GymID).
		Select("name", "phone", "email", "is_active", "updated_at").
		Updates(m).Error
}

func findMember(db *gorm.DB, gymID, id uuid.UUID) (*models.Member, error) {
	var m models.Member
	if err := db.
		Where("id = ? AND gym_id = ?", id, gymID).
		First(&m).Error; err != nil {
		return nil, notFound(err, httperr.ErrMemberNotFound)
	}
	return &m, nil
}
