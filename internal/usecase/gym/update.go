package gym

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/gym"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

// UpdateGymInput carries optional changes; at least one must be set.
type UpdateGymInput struct {
	Plan   *string
	Status *string
}

type UpdateGym struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateGym(repo domain.Repository, recorder audit.Recorder) *UpdateGym {
	return &UpdateGym{repo: repo, audit: recorder}
}

// Execute applies plan and status changes. A new plan governs the very next
// quota check.
func (uc *UpdateGym) Execute(
	ctx context.Context,
	actor access.Identity,
	gymID uuid.UUID,
	in UpdateGymInput,
) (*models.Gym, error) {

	if in.Plan == nil && in.Status == nil {
		return nil, httperr.Validation(
			"plan or status is required",
			httperr.FieldError{Field: "plan", Issue: "required"},
			httperr.FieldError{Field: "status", Issue: "required"},
		)
	}

	g, err := uc.repo.GetByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}

	if in.Plan != nil {
		k, ok := plan.ParseKey(*in.Plan)
		if !ok {
			return nil, invalidPlan()
		}
		changes["plan"] = map[string]any{"from": g.Plan, "to": k}
		g.Plan = k
	}

	if in.Status != nil {
		s := models.GymStatus(strings.ToUpper(strings.TrimSpace(*in.Status)))
		if !s.Valid() {
			return nil, httperr.Validation(
				"Invalid status",
				httperr.FieldError{Field: "status", Issue: "invalid_value"},
			)
		}
		changes["status"] = map[string]any{"from": g.Status, "to": s}
		g.Status = s
	}

	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(g.ID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "gym_updated",
		Entity:   "gym",
		EntityID: audit.Ptr(g.ID),
		Metadata: changes,
	})

	return g, nil
}
