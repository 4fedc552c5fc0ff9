package models

import "github.com/BruksfildServices01/gym-saas/internal/domain/plan"

type GymStatus string

const (
	GymActive   GymStatus = "ACTIVE"
	GymInactive GymStatus = "INACTIVE"
)

func (s GymStatus) Valid() bool {
	return s == GymActive || s == GymInactive
}

// Gym is the tenant.
type Gym struct {
	Base
	Name             string    `gorm:"size:100;not null" json:"name"`
	Address          string    `gorm:"size:255" json:"address"`
	GoogleMapAddress string    `gorm:"size:255" json:"googleMapAddress,omitempty"`
	Status           GymStatus `gorm:"size:20;not null" json:"status"`
	Plan             plan.Key  `gorm:"size:20;not null" json:"plan"`
}
