package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/account"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// FindByEmail returns nil, nil when no user has the email.
func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Gym").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, notFound(err, httperr.NotFound("User not found"))
	}
	return &user, nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserGormRepository) GymExists(
	ctx context.Context,
	gymID uuid.UUID,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Gym{}).
		Where("id = ?", gymID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return uniqueEmail(err)
	}
	return nil
}

func (r *UserGormRepository) CreateStaffWithinQuota(
	ctx context.Context,
	u *models.User,
	check plan.Check,
) error {

	if u.GymID == nil {
		return httperr.ErrTenantNotFound
	}
	gymID := *u.GymID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createWithinQuota(
			tx,
			gymID,
			check,
			func(tx *gorm.DB) (int64, error) { return countStaff(tx, gymID) },
			func(tx *gorm.DB) error { return tx.Create(u).Error },
		)
	})
	return uniqueEmail(err)
}

func (r *UserGormRepository) ListStaff(
	ctx context.Context,
	gymID uuid.UUID,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("gym_id = ? AND role = ?", gymID, access.RoleStaff).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) SuperUserExists(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", access.RoleSuperUser).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func uniqueEmail(err error) error {
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrEmailExists
	}
	return err
}
