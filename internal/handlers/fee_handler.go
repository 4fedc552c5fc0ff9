package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	ucFee "github.com/BruksfildServices01/gym-saas/internal/usecase/fee"
)

// ======================================================
// HANDLER
// ======================================================

type FeeHandler struct {
	record       *ucFee.RecordFee
	listByMember *ucFee.ListMemberFees
	list         *ucFee.ListFees
	report       *ucFee.FeeReport
}

func NewFeeHandler(
	record *ucFee.RecordFee,
	listByMember *ucFee.ListMemberFees,
	list *ucFee.ListFees,
	report *ucFee.FeeReport,
) *FeeHandler {
	return &FeeHandler{
		record:       record,
		listByMember: listByMember,
		list:         list,
		report:       report,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// RecordFeeRequest accepts amounts as JSON numbers or numeric strings.
type RecordFeeRequest struct {
	MemberID        string           `json:"memberId" binding:"required"`
	OriginalAmount  *decimal.Decimal `json:"originalAmount" binding:"required"`
	AmountPaid      *decimal.Decimal `json:"amountPaid" binding:"required"`
	DiscountType    string           `json:"discountType"`
	DiscountApplied *decimal.Decimal `json:"discountApplied"`
	Type            string           `json:"type"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *FeeHandler) Record(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req RecordFeeRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		fail(c, invalidID("memberId"))
		return
	}

	f, err := h.record.Execute(c.Request.Context(), id, ucFee.RecordFeeInput{
		MemberID:        memberID,
		OriginalAmount:  *req.OriginalAmount,
		AmountPaid:      *req.AmountPaid,
		DiscountType:    req.DiscountType,
		DiscountApplied: req.DiscountApplied,
		Type:            req.Type,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Fees paid of member "+memberID.String(), f)
}

func (h *FeeHandler) ListByMember(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		fail(c, err)
		return
	}

	fees, err := h.listByMember.Execute(c.Request.Context(), gymID, memberID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, "", fees)
}

// List is the paginated gym-wide summary, newest first, with member and
// fee taker attached.
func (h *FeeHandler) List(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	page := dto.ParsePage(c.Query("page"), c.Query("limit"), 10, 100)

	fees, total, err := h.list.Execute(c.Request.Context(), gymID, page.Offset(), page.Limit)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "", fees, httpresp.NewPagination(page.Page, page.Limit, total))
}

func (h *FeeHandler) Report(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	res, err := h.report.Execute(c.Request.Context(), gymID, c.Query("from"), c.Query("to"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", res)
}
