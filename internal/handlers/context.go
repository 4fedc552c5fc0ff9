package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/middleware"
)

// fail hands err to the central error handler.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return httperr.FromBinding(err)
	}
	return nil
}

func identity(c *gin.Context) (access.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return access.Identity{}, httperr.ErrUnauthorized
	}
	return id, nil
}

// tenant is the caller's gym; every tenant-scoped query filters on it.
func tenant(c *gin.Context) (uuid.UUID, error) {
	id, err := identity(c)
	if err != nil {
		return uuid.Nil, err
	}
	gymID, ok := id.Tenant()
	if !ok {
		return uuid.Nil, httperr.Validation(
			"Gym id is required",
			httperr.FieldError{Field: "gymId", Issue: "required"},
		)
	}
	return gymID, nil
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidID(name)
	}
	return id, nil
}

// optionalUUID parses s; empty means absent.
func optionalUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, invalidID(field)
	}
	return id, nil
}

func invalidID(field string) error {
	return httperr.Validation(
		"Invalid "+field,
		httperr.FieldError{Field: field, Issue: "invalid"},
	)
}
