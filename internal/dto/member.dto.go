package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

type MemberDTO struct {
	ID        uuid.UUID `json:"id"`
	GymID     uuid.UUID `json:"gymId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	JoinDate  string    `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMemberDTO(m *models.Member) MemberDTO {
	return MemberDTO{
		ID:        m.ID,
		GymID:     m.GymID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		IsActive:  m.IsActive,
		JoinDate:  time.Time(m.JoinDate).Format(timezone.DayLayout),
		CreatedAt: m.CreatedAt,
	}
}

func NewMemberDTOs(members []models.Member) []MemberDTO {
	out := make([]MemberDTO, 0, len(members))
	for i := range members {
		out = append(out, NewMemberDTO(&members[i]))
	}
	return out
}
