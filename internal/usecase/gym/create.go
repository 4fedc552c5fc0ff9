package gym

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/gym"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type CreateGymInput struct {
	Name             string
	Address          string
	GoogleMapAddress string
	Plan             string
}

type CreateGym struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateGym(repo domain.Repository, recorder audit.Recorder) *CreateGym {
	return &CreateGym{repo: repo, audit: recorder}
}

// Execute creates an ACTIVE gym on the default plan unless one is given.
func (uc *CreateGym) Execute(
	ctx context.Context,
	actor access.Identity,
	in CreateGymInput,
) (*models.Gym, error) {

	key := plan.Default
	if strings.TrimSpace(in.Plan) != "" {
		k, ok := plan.ParseKey(in.Plan)
		if !ok {
			return nil, invalidPlan()
		}
		key = k
	}

	g := &models.Gym{
		Name:             strings.TrimSpace(in.Name),
		Address:          strings.TrimSpace(in.Address),
		GoogleMapAddress: strings.TrimSpace(in.GoogleMapAddress),
		Status:           models.GymActive,
		Plan:             key,
	}

	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(g.ID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "gym_created",
		Entity:   "gym",
		EntityID: audit.Ptr(g.ID),
		Metadata: map[string]any{"plan": g.Plan},
	})

	return g, nil
}

func invalidPlan() error {
	return httperr.Validation(
		"Invalid plan",
		httperr.FieldError{Field: "plan", Issue: "invalid_value"},
	)
}
