package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	"github.com/BruksfildServices01/gym-saas/internal/middleware"
	ucAccount "github.com/BruksfildServices01/gym-saas/internal/usecase/account"
)

// InternalHandler serves platform-operator account creation.
type InternalHandler struct {
	createOwner     *ucAccount.CreateOwner
	createSuperUser *ucAccount.CreateSuperUser
}

func NewInternalHandler(
	createOwner *ucAccount.CreateOwner,
	createSuperUser *ucAccount.CreateSuperUser,
) *InternalHandler {
	return &InternalHandler{createOwner: createOwner, createSuperUser: createSuperUser}
}

type CreateOwnerRequest struct {
	CreateUserRequest
	GymID string `json:"gymId" binding:"required,uuid"`
}

func (h *InternalHandler) CreateOwner(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req CreateOwnerRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	gymID, err := uuid.Parse(req.GymID)
	if err != nil {
		fail(c, invalidID("gymId"))
		return
	}

	in := req.input()
	in.GymID = &gymID

	user, err := h.createOwner.Execute(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "A new gym owner was successfully created", dto.NewUserDTO(user))
}

// CreateSuperUser runs with or without an identity; see
// middleware.SuperUserOrBootstrap.
func (h *InternalHandler) CreateSuperUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	var actor *access.Identity
	if id, ok := middleware.IdentityFrom(c); ok {
		actor = &id
	}

	user, err := h.createSuperUser.Execute(c.Request.Context(), actor, req.input())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Super user created successfully", dto.NewUserDTO(user))
}
