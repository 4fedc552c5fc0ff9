package member

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/member"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/validators"
)

// UpdateMemberInput is a partial update; nil fields are left alone.
type UpdateMemberInput struct {
	Name     *string
	Phone    *string
	Email    *string
	IsActive *bool
}

type UpdateMember struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateMember(repo domain.Repository, recorder audit.Recorder) *UpdateMember {
	return &UpdateMember{repo: repo, audit: recorder}
}

func (uc *UpdateMember) Execute(
	ctx context.Context,
	actor access.Identity,
	id uuid.UUID,
	in UpdateMemberInput,
) (*models.Member, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	m, err := uc.repo.GetForGym(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.Missing("name")
		}
		m.Name = name
	}
	if in.Phone != nil {
		m.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		m.Email = validators.NormalizeEmail(*in.Email)
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "member_updated",
		Entity:   "member",
		EntityID: audit.Ptr(m.ID),
	})

	return m, nil
}

// DeactivateMember is a soft delete; members are never removed.
type DeactivateMember struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeactivateMember(repo domain.Repository, recorder audit.Recorder) *DeactivateMember {
	return &DeactivateMember{repo: repo, audit: recorder}
}

func (uc *DeactivateMember) Execute(
	ctx context.Context,
	actor access.Identity,
	id uuid.UUID,
) (*models.Member, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	m, err := uc.repo.GetForGym(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	m.IsActive = false
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "member_deactivated",
		Entity:   "member",
		EntityID: audit.Ptr(m.ID),
	})

	return m, nil
}
