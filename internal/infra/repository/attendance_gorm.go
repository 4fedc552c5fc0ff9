package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/attendance"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AttendanceGormRepository)(nil)

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

func (r *AttendanceGormRepository) GetMember(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
) (*models.Member, error) {
	return findMember(r.db.WithContext(ctx), gymID, memberID)
}

func (r *AttendanceGormRepository) ExistsForDay(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
	day time.Time,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("member_id = ? AND gym_id = ? AND date = ?", memberID, gymID, datatypes.Date(day)).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AttendanceGormRepository) Create(
	ctx context.Context,
	a *models.Attendance,
) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrAlreadyMarked
		}
		return err
	}
	return nil
}

func (r *AttendanceGormRepository) ListByMember(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
	rng domain.Range,
) ([]models.Attendance, error) {

	q := r.db.WithContext(ctx).
		Where("member_id = ? AND gym_id = ?", memberID, gymID)

	if rng.From != nil {
		q = q.Where("date >= ?", datatypes.Date(*rng.From))
	}
	if rng.To != nil {
		q = q.Where("date <= ?", datatypes.Date(*rng.To))
	}

	var records []models.Attendance
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceGormRepository) ListByDay(
	ctx context.Context,
	gymID uuid.UUID,
	day time.Time,
) ([]models.Attendance, error) {

	var records []models.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Member", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("MarkedBy", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "username")
		}).
		Where("gym_id = ? AND date = ?", gymID, datatypes.Date(day)).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceGormRepository) GetForGym(
	ctx context.Context,
	gymID uuid.UUID,
	id uuid.UUID,
) (*models.Attendance, error) {

	var a models.Attendance
	if err := r.db.WithContext(ctx).
		Where("id = ? AND gym_id = ?", id, gymID).
		First(&a).Error; err != nil {
		return nil, notFound(err, httperr.ErrAttendanceNotFound)
	}
	return &a, nil
}

func (r *AttendanceGormRepository) UpdateStatus(
	ctx context.Context,
	a *models.Attendance,
	status domain.Status,
) error {
	a.Status = string(status)
	return r.db.WithContext(ctx).
		Model(a).
		Where("gym_id = ?", a.GymID).
		Select("status", "updated_at").
		Updates(a).Error
}
