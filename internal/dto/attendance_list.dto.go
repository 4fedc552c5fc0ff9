package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

type PersonRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AttendanceDTO struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   uuid.UUID  `json:"memberId"`
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	MarkedByID uuid.UUID  `json:"markedById"`
	Member     *PersonRef `json:"member,omitempty"`
	MarkedBy   *PersonRef `json:"markedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func NewAttendanceDTO(a *models.Attendance) AttendanceDTO {
	out := AttendanceDTO{
		ID:         a.ID,
		MemberID:   a.MemberID,
		Date:       time.Time(a.Date).Format(timezone.DayLayout),
		Status:     a.Status,
		MarkedByID: a.MarkedByID,
		CreatedAt:  a.CreatedAt,
	}
	if a.Member != nil {
		out.Member = &PersonRef{ID: a.Member.ID, Name: a.Member.Name}
	}
	if a.MarkedBy != nil {
		name := a.MarkedBy.Name
		if name == "" {
			name = a.MarkedBy.Username
		}
		out.MarkedBy = &PersonRef{ID: a.MarkedBy.ID, Name: name}
	}
	return out
}

func NewAttendanceDTOs(records []models.Attendance) []AttendanceDTO {
	out := make([]AttendanceDTO, 0, len(records))
	for i := range records {
		out = append(out, NewAttendanceDTO(&records[i]))
	}
	return out
}
