package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type UserDTO struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Name     string      `json:"name,omitempty"`
	Role     access.Role `json:"role"`
	GymID    *uuid.UUID  `json:"gymId"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		GymID:    u.GymID,
	}
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserDTO(&users[i]))
	}
	return out
}
