package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/auditlog"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AuditGormRepository)(nil)

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) List(
	ctx context.Context,
	gymID uuid.UUID,
	f domain.Filter,
) ([]models.AuditLog, int64, error) {

	// always scoped to the gym
	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("gym_id = ?", gymID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
