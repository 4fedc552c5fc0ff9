package auditlog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-saas/internal/domain/auditlog"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

type ListAuditLogsInput struct {
	Action string
	Entity string
	From   string
	To     string
	Offset int
	Limit  int
}

type ListAuditLogs struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListAuditLogs(repo domain.Repository, clock *timezone.Clock) *ListAuditLogs {
	return &ListAuditLogs{repo: repo, clock: clock}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	gymID uuid.UUID,
	in ListAuditLogsInput,
) ([]models.AuditLog, int64, error) {

	f := domain.Filter{
		Action: strings.TrimSpace(in.Action),
		Entity: strings.TrimSpace(in.Entity),
		Offset: in.Offset,
		Limit:  in.Limit,
	}

	if in.From != "" {
		d, err := uc.clock.ParseDay(in.From)
		if err != nil {
			return nil, 0, invalidDay("from")
		}
		f.From = uc.clock.StartOf(d)
	}
	if in.To != "" {
		d, err := uc.clock.ParseDay(in.To)
		if err != nil {
			return nil, 0, invalidDay("to")
		}
		f.To = uc.clock.StartOf(d).AddDate(0, 0, 1)
	}

	return uc.repo.List(ctx, gymID, f)
}

func invalidDay(field string) error {
	return httperr.Validation(
		"Invalid "+field+", expected YYYY-MM-DD",
		httperr.FieldError{Field: field, Issue: "invalid"},
	)
}
