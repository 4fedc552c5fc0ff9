package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/gym-saas/internal/usecase/account"
	ucGym "github.com/BruksfildServices01/gym-saas/internal/usecase/gym"
)

// ======================================================
// HANDLER
// ======================================================

type GymHandler struct {
	create      *ucGym.CreateGym
	list        *ucGym.ListGyms
	update      *ucGym.UpdateGym
	overview    *ucGym.GetOverview
	listStaff   *ucAccount.ListStaff
	createStaff *ucAccount.CreateStaff
}

func NewGymHandler(
	create *ucGym.CreateGym,
	list *ucGym.ListGyms,
	update *ucGym.UpdateGym,
	overview *ucGym.GetOverview,
	listStaff *ucAccount.ListStaff,
	createStaff *ucAccount.CreateStaff,
) *GymHandler {
	return &GymHandler{
		create:      create,
		list:        list,
		update:      update,
		overview:    overview,
		listStaff:   listStaff,
		createStaff: createStaff,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateGymRequest struct {
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	GoogleMapAddress string `json:"googleMapAddress"`
	Plan             string `json:"plan"`
}

type UpdateGymRequest struct {
	Plan   *string `json:"plan"`
	Status *string `json:"status"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r CreateUserRequest) input() ucAccount.CreateUserInput {
	return ucAccount.CreateUserInput{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ======================================================
// SUPER USER
// ======================================================

func (h *GymHandler) Create(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req CreateGymRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	gym, err := h.create.Execute(c.Request.Context(), id, ucGym.CreateGymInput{
		Name:             req.Name,
		Address:          req.Address,
		GoogleMapAddress: req.GoogleMapAddress,
		Plan:             req.Plan,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Gym created successfully", gym)
}

func (h *GymHandler) List(c *gin.Context) {
	page := dto.ParsePage(c.Query("page"), c.Query("limit"), 10, 100)

	gyms, total, err := h.list.Execute(c.Request.Context(), page.Offset(), page.Limit)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "", gyms, httpresp.NewPagination(page.Page, page.Limit, total))
}

func (h *GymHandler) Update(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	gymID, err := uuidParam(c, "gymId")
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateGymRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	gym, err := h.update.Execute(c.Request.Context(), id, gymID, ucGym.UpdateGymInput{
		Plan:   req.Plan,
		Status: req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Gym updated successfully", gym)
}

// ======================================================
// OWNER / STAFF
// ======================================================

func (h *GymHandler) Me(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	ov, err := h.overview.Execute(c.Request.Context(), gymID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", dto.GymOverviewDTO{
		Gym:    ov.Gym,
		Plan:   ov.Plan.Key,
		Limits: ov.Plan.Limits,
		Usage:  ov.Usage,
	})
}

func (h *GymHandler) ListStaff(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	staff, err := h.listStaff.Execute(c.Request.Context(), gymID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, "", dto.NewUserDTOs(staff))
}

func (h *GymHandler) AddStaff(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, err := h.createStaff.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Staff member created successfully", dto.NewUserDTO(user))
}
