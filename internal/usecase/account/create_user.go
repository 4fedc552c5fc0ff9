package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/auth"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/account"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
	GymID    *uuid.UUID
}

// ======================================================
// SHARED
// ======================================================

// DomainCheck verifies an email's domain; nil skips the lookup.
type DomainCheck func(ctx context.Context, email string) bool

type creator struct {
	repo   domain.Repository
	hasher *auth.PasswordHasher
	audit  audit.Recorder
	check  DomainCheck
}

// build validates the email and hashes the password. The role is fixed by
// the caller, never by input.
func (c creator) build(
	ctx context.Context,
	in CreateUserInput,
	role access.Role,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)

	if c.check != nil && !c.check(ctx, email) {
		return nil, httperr.Validation(
			"The email domain does not appear to be valid",
			httperr.FieldError{Field: "email", Issue: "invalid_email"},
		)
	}

	if len(in.Password) > auth.MaxPasswordBytes {
		return nil, httperr.Validation(
			"Password must be at most 72 bytes",
			httperr.FieldError{Field: "password", Issue: "too_long"},
		)
	}

	exists, err := c.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrEmailExists
	}

	hash, err := c.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		GymID:        in.GymID,
		Email:        email,
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

func (c creator) record(actor *uuid.UUID, u *models.User, action string) {
	c.audit.Record(audit.Event{
		GymID:    u.GymID,
		UserID:   actor,
		Action:   action,
		Entity:   "user",
		EntityID: audit.Ptr(u.ID),
		Metadata: map[string]any{"email": u.Email, "role": u.Role},
	})
}

// ======================================================
// STAFF
// ======================================================

type CreateStaff struct {
	creator
}

func NewCreateStaff(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	recorder audit.Recorder,
	check DomainCheck,
) *CreateStaff {
	return &CreateStaff{creator{repo: repo, hasher: hasher, audit: recorder, check: check}}
}

// Execute creates a STAFF user in the actor's gym. The staff quota is
// re-checked under the gym row lock.
func (uc *CreateStaff) Execute(
	ctx context.Context,
	actor access.Identity,
	in CreateUserInput,
) (*models.User, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}
	in.GymID = &gymID

	u, err := uc.build(ctx, in, access.RoleStaff)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateStaffWithinQuota(ctx, u, plan.Plan.CanAddStaff); err != nil {
		return nil, err
	}

	uc.record(audit.Ptr(actor.UserID), u, "staff_created")
	return u, nil
}

// ======================================================
// OWNER
// ======================================================

type CreateOwner struct {
	creator
}

func NewCreateOwner(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	recorder audit.Recorder,
	check DomainCheck,
) *CreateOwner {
	return &CreateOwner{creator{repo: repo, hasher: hasher, audit: recorder, check: check}}
}

func (uc *CreateOwner) Execute(
	ctx context.Context,
	actor access.Identity,
	in CreateUserInput,
) (*models.User, error) {

	if in.GymID == nil || *in.GymID == uuid.Nil {
		return nil, httperr.Validation(
			"Gym ID is required",
			httperr.FieldError{Field: "gymId", Issue: "required"},
		)
	}

	exists, err := uc.repo.GymExists(ctx, *in.GymID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrTenantNotFound
	}

	u, err := uc.build(ctx, in, access.RoleOwner)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.record(audit.Ptr(actor.UserID), u, "owner_created")
	return u, nil
}

// ======================================================
// SUPER USER
// ======================================================

type CreateSuperUser struct {
	creator
}

func NewCreateSuperUser(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	recorder audit.Recorder,
	check DomainCheck,
) *CreateSuperUser {
	return &CreateSuperUser{creator{repo: repo, hasher: hasher, audit: recorder, check: check}}
}

// Execute creates a platform account without a gym. actor is nil during
// bootstrap.
func (uc *CreateSuperUser) Execute(
	ctx context.Context,
	actor *access.Identity,
	in CreateUserInput,
) (*models.User, error) {

	in.GymID = nil

	u, err := uc.build(ctx, in, access.RoleSuperUser)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	var by *uuid.UUID
	if actor != nil {
		by = audit.Ptr(actor.UserID)
	}
	uc.record(by, u, "super_user_created")
	return u, nil
}
