package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attendance holds at most one row per member, gym and calendar day.
type Attendance struct {
	Base
	MemberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_member_day,priority:1" json:"memberId"`
	Member   *Member   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member,omitempty"`

	GymID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_attendance_member_day,priority:2" json:"gymId"`
	Date  datatypes.Date `gorm:"not null;index;uniqueIndex:idx_attendance_member_day,priority:3" json:"date"`

	Status string `gorm:"size:20;not null" json:"status"`

	MarkedByID uuid.UUID `gorm:"type:uuid;not null" json:"markedById"`
	MarkedBy   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"markedBy,omitempty"`
}
