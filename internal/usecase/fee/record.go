package fee

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gym-saas/internal/audit"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/fee"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type RecordFeeInput struct {
	MemberID        uuid.UUID
	OriginalAmount  decimal.Decimal
	AmountPaid      decimal.Decimal
	DiscountType    string
	DiscountApplied *decimal.Decimal
	Type            string
}

type RecordFee struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRecordFee(repo domain.Repository, recorder audit.Recorder) *RecordFee {
	return &RecordFee{repo: repo, audit: recorder}
}

// Execute stores a payment. Amounts are validated before anything is written.
func (uc *RecordFee) Execute(
	ctx context.Context,
	actor access.Identity,
	in RecordFeeInput,
) (*models.Fee, error) {

	gymID, ok := actor.Tenant()
	if !ok {
		return nil, httperr.ErrTenantNotFound
	}

	if in.MemberID == uuid.Nil {
		return nil, httperr.Missing("memberId")
	}

	feeType, err := domain.ParseType(in.Type)
	if err != nil {
		return nil, err
	}

	discountType, err := domain.ParseDiscountType(in.DiscountType)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if in.DiscountApplied != nil {
		discount = *in.DiscountApplied
	}

	amounts := domain.Amounts{
		Original:        in.OriginalAmount,
		Paid:            in.AmountPaid,
		DiscountType:    discountType,
		DiscountApplied: discount,
	}
	if err := amounts.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetMember(ctx, gymID, in.MemberID); err != nil {
		return nil, err
	}

	f := &models.Fee{
		MemberID:        in.MemberID,
		GymID:           gymID,
		TakenByID:       actor.UserID,
		OriginalAmount:  amounts.Original,
		AmountPaid:      amounts.Paid,
		DiscountType:    string(discountType),
		DiscountApplied: amounts.DiscountApplied,
		Type:            string(feeType),
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	uc.audit.Record(audit.Event{
		GymID:    audit.Ptr(gymID),
		UserID:   audit.Ptr(actor.UserID),
		Action:   "fee_recorded",
		Entity:   "fee",
		EntityID: audit.Ptr(f.ID),
		Metadata: map[string]any{
			"memberId":   in.MemberID,
			"amountPaid": f.AmountPaid,
			"type":       f.Type,
		},
	})

	return f, nil
}
