package attendance

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/attendance"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type MarkAttendanceInput struct {
	MemberID uuid.UUID
	Date     string
	Status   string
}

// ======================================================
// USE CASE
// ======================================================

type MarkAttendance struct {
	repo  domain.Repository
	clock *timezone.Clock
	audit audit.Recorder
}

func NewMarkAttendance(
	repo domain.Repository,
	clock *timezone.Clock,
	recorder audit.Recorder,
) *MarkAttendance {
	return &MarkAttendance{repo: repo, clock: clock, audit: recorder}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *MarkAttendance) Execute(
	ctx context.Context,
	actor access.Identity,
	in MarkAttendanceInput,
) (*models.Attendance, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	var missing []string
	if in.MemberID == uuid.Nil {
		missing = append(missing, "memberId")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, httperr.Missing(missing...)
	}

	// --------------------------------------------------
	// Day, at calendar granularity
	// --------------------------------------------------
	day, err := uc.clock.ParseDay(in.Date)
	if err != nil {
		return nil, invalidDate("date")
	}
	if day.After(uc.clock.Today()) {
		return nil, httperr.ErrFutureDate
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Member must belong to the gym
	// --------------------------------------------------
	if _, err := uc.repo.GetMember(ctx, gymID, in.MemberID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// One mark per member and day (also backed by a unique index)
	// --------------------------------------------------
	exists, err := uc.repo.ExistsForDay(ctx, gymID, in.MemberID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrAlreadyMarked
	}

	a := &models.Attendance{
		MemberID:   in.MemberID,
		GymID:      gymID,
		Date:       datatypes.Date(day),
		Status:     string(status),
		MarkedByID: actor.UserID,
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "attendance_marked",
		Entity:   "attendance",
		EntityID: audit.Ptr(a.ID),
		Metadata: map[string]any{"memberId": in.MemberID, "date": day.Format(timezone.DayLayout)},
	})

	return a, nil
}

func invalidDate(field string) error {
	return httperr.Validation(
		"Invalid "+field+", expected YYYY-MM-DD",
		httperr.FieldError{Field: field, Issue: "invalid"},
	)
}
