package models

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
)

type User struct {
	Base
	GymID *uuid.UUID `gorm:"type:uuid;index" json:"gymId"`
	Gym   *Gym       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"gym,omitempty"`

	Email        string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username     string      `gorm:"size:100;not null" json:"username"`
	Name         string      `gorm:"size:100" json:"name"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	Role         access.Role `gorm:"size:20;not null;index" json:"role"`
}

func (u *User) Identity() access.Identity {
	return access.Identity{UserID: u.ID, Role: u.Role, GymID: u.GymID}
}
