package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/member"
	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	ucMember "github.com/BruksfildServices01/gym-saas/internal/usecase/member"
)

// ======================================================
// HANDLER
// ======================================================

type MemberHandler struct {
	create     *ucMember.CreateMember
	list       *ucMember.ListMembers
	get        *ucMember.GetMember
	update     *ucMember.UpdateMember
	deactivate *ucMember.DeactivateMember
}

func NewMemberHandler(
	create *ucMember.CreateMember,
	list *ucMember.ListMembers,
	get *ucMember.GetMember,
	update *ucMember.UpdateMember,
	deactivate *ucMember.DeactivateMember,
) *MemberHandler {
	return &MemberHandler{
		create:     create,
		list:       list,
		get:        get,
		update:     update,
		deactivate: deactivate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	JoinDate string `json:"joinDate"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *MemberHandler) Create(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req CreateMemberRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	m, err := h.create.Execute(c.Request.Context(), id, ucMember.CreateMemberInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Member created successfully", dto.NewMemberDTO(m))
}

// List supports ?page&limit&search; search matches name, phone or email.
func (h *MemberHandler) List(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	page := dto.ParsePage(c.Query("page"), c.Query("limit"), 10, 100)

	members, total, err := h.list.Execute(c.Request.Context(), gymID, domain.Filter{
		Search: c.Query("search"),
		Offset: page.Offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "", dto.NewMemberDTOs(members), httpresp.NewPagination(page.Page, page.Limit, total))
}

func (h *MemberHandler) Get(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	m, err := h.get.Execute(c.Request.Context(), gymID, memberID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", dto.NewMemberDTO(m))
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateMemberRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	m, err := h.update.Execute(c.Request.Context(), id, memberID, ucMember.UpdateMemberInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Member updated successfully", dto.NewMemberDTO(m))
}

func (h *MemberHandler) Deactivate(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	m, err := h.deactivate.Execute(c.Request.Context(), id, memberID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Member deactivated successfully", dto.NewMemberDTO(m))
}
