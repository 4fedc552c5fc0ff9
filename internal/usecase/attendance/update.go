package attendance

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/attendance"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type UpdateAttendance struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateAttendance(repo domain.Repository, recorder audit.Recorder) *UpdateAttendance {
	return &UpdateAttendance{repo: repo, audit: recorder}
}

func (uc *UpdateAttendance) Execute(
	ctx context.Context,
	actor access.Identity,
	id uuid.UUID,
	status string,
) (*models.Attendance, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	if strings.TrimSpace(status) == "" {
		return nil, httperr.Missing("status")
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	a, err := uc.repo.GetForGym(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	previous := a.Status
	if err := uc.repo.UpdateStatus(ctx, a, st); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "attendance_updated",
		Entity:   "attendance",
		EntityID: audit.Ptr(a.ID),
		Metadata: map[string]any{"from": previous, "to": st},
	})

	return a, nil
}
