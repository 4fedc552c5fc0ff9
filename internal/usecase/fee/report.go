package fee

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/fee"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

type ReportResult struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	domain.Report
}

type FeeReport struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewFeeReport(repo domain.Repository, clock *timezone.Clock) *FeeReport {
	return &FeeReport{repo: repo, clock: clock}
}

// Execute totals fees collected between from and to, both inclusive days in
// the server timezone. Empty bounds are open.
func (uc *FeeReport) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	from string,
	to string,
) (*ReportResult, error) {

	var start, end time.Time
	res := &ReportResult{}

	if strings.TrimSpace(from) != "" {
		d, err := uc.clock.ParseDay(from)
		if err != nil {
			return nil, invalidDay("from")
		}
		start = uc.clock.StartOf(d)
		res.From = d.Format(timezone.DayLayout)
	}
	if strings.TrimSpace(to) != "" {
		d, err := uc.clock.ParseDay(to)
		if err != nil {
			return nil, invalidDay("to")
		}
		end = uc.clock.StartOf(d).AddDate(0, 0, 1)
		res.To = d.Format(timezone.DayLayout)
	}

	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return nil, httperr.Validation(
			"from must not be after to",
			httperr.FieldError{Field: "from", Issue: "invalid_value"},
		)
	}

	fees, err := uc.repo.ListBetween(ctx, gymID, start, end)
	if err != nil {
		return nil, err
	}

	res.Report = domain.Summarize(fees)
	return res, nil
}

func invalidDay(field string) error {
	return httperr.Validation(
		"Invalid "+field+", expected YYYY-MM-DD",
		httperr.FieldError{Field: field, Issue: "invalid"},
	)
}
