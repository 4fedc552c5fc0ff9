package member

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/member"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
	"github.com/BruksfildServices01/gym-saas/internal/validators"
)

type CreateMemberInput struct {
	Name     string
	Phone    string
	Email    string
	JoinDate string
}

type CreateMember struct {
	repo  domain.Repository
	clock *timezone.Clock
	audit audit.Recorder
}

func NewCreateMember(
	repo domain.Repository,
	clock *timezone.Clock,
	recorder audit.Recorder,
) *CreateMember {
	return &CreateMember{repo: repo, clock: clock, audit: recorder}
}

// Execute adds an active member to the actor's gym. The member quota is
// checked again inside the insert transaction.
func (uc *CreateMember) Execute(
	ctx context.Context,
	actor access.Identity,
	in CreateMemberInput,
) (*models.Member, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	joined := uc.clock.Today()
	if strings.TrimSpace(in.JoinDate) != "" {
		d, err := uc.clock.ParseDay(in.JoinDate)
		if err != nil {
			return nil, invalidDate("joinDate")
		}
		joined = d
	}

	m := &models.Member{
		GymID:    gymID,
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    validators.NormalizeEmail(in.Email),
		IsActive: true,
		JoinDate: datatypes.Date(joined),
	}

	if err := uc.repo.CreateWithinQuota(ctx, m, plan.Plan.CanAddMember); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "member_created",
		Entity:   "member",
		EntityID: audit.Ptr(m.ID),
	})

	return m, nil
}

func invalidDate(field string) error {
	return httperr.Validation(
		"Invalid "+field+", expected YYYY-MM-DD",
		httperr.FieldError{Field: field, Issue: "invalid"},
	)
}
