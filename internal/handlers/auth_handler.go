package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	ucAccount "github.com/BruksfildServices01/gym-saas/internal/usecase/account"
)

// LoginObserver counts login outcomes; may be nil.
type LoginObserver interface {
	LoginAttempt(outcome string)
}

type AuthHandler struct {
	login   *ucAccount.Authenticate
	me      *ucAccount.GetMe
	observe LoginObserver
}

func NewAuthHandler(
	login *ucAccount.Authenticate,
	me *ucAccount.GetMe,
	observe LoginObserver,
) *AuthHandler {
	return &AuthHandler{login: login, me: me, observe: observe}
}

// --------- Requests / responses ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      dto.UserDTO `json:"user"`
}

type MeResponse struct {
	User dto.UserDTO `json:"user"`
	Gym  *models.Gym `json:"gym,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.observed(loginOutcome(err))
		fail(c, err)
		return
	}
	h.observed("success")

	httpresp.OK(c, "Login successful", LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      dto.NewUserDTO(res.User),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	user, err := h.me.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", MeResponse{User: dto.NewUserDTO(user), Gym: user.Gym})
}

func (h *AuthHandler) observed(outcome string) {
	if h.observe != nil {
		h.observe.LoginAttempt(outcome)
	}
}

func loginOutcome(err error) string {
	switch {
	case httperr.IsBusiness(err, httperr.CodeInvalidCredentials):
		return "invalid_credentials"
	case httperr.IsBusiness(err, httperr.CodeTooManyAttempts):
		return "throttled"
	}
	return "error"
}
