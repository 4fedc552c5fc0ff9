package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/attendance"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

// ListMemberAttendance returns a member's marks, newest day first, optionally
// within an inclusive from/to range.
type ListMemberAttendance struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListMemberAttendance(repo domain.Repository, clock *timezone.Clock) *ListMemberAttendance {
	return &ListMemberAttendance{repo: repo, clock: clock}
}

func (uc *ListMemberAttendance) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	memberID uuid.UUID,
	from string,
	to string,
) ([]models.Attendance, error) {

	var rng domain.Range

	if strings.TrimSpace(from) != "" {
		d, err := uc.clock.ParseDay(from)
		if err != nil {
			return nil, invalidDate("from")
		}
		rng.From = &d
	}
	if strings.TrimSpace(to) != "" {
		d, err := uc.clock.ParseDay(to)
		if err != nil {
			return nil, invalidDate("to")
		}
		rng.To = &d
	}

	if _, err := uc.repo.GetMember(ctx, gymID, memberID); err != nil {
		return nil, err
	}

	return uc.repo.ListByMember(ctx, gymID, memberID, rng)
}

// ListAttendanceByDate returns the gym's marks for one day, today by default.
type ListAttendanceByDate struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListAttendanceByDate(repo domain.Repository, clock *timezone.Clock) *ListAttendanceByDate {
	return &ListAttendanceByDate{repo: repo, clock: clock}
}

func (uc *ListAttendanceByDate) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	date string,
) (time.Time, []models.Attendance, error) {

	day := uc.clock.Today()
	if strings.TrimSpace(date) != "" {
		d, err := uc.clock.ParseDay(date)
		if err != nil {
			return time.Time{}, nil, invalidDate("date")
		}
		day = d
	}

	records, err := uc.repo.ListByDay(ctx, gymID, day)
	if err != nil {
		return time.Time{}, nil, err
	}
	return day, records, nil
}
