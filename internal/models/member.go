package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Member struct {
	Base
	GymID uuid.UUID `gorm:"type:uuid;not null;index" json:"gymId"`

	Name     string         `gorm:"size:100;not null" json:"name"`
	Phone    string         `gorm:"size:20" json:"phone"`
	Email    string         `gorm:"size:100" json:"email"`
	IsActive bool           `gorm:"not null" json:"isActive"`
	JoinDate datatypes.Date `json:"joinDate"`
}
