package fee

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type TypeTotal struct {
	Type      string          `json:"type"`
	Count     int             `json:"count"`
	Collected decimal.Decimal `json:"collected"`
}

type Report struct {
	Count         int             `json:"count"`
	TotalOriginal decimal.Decimal `json:"totalOriginal"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	ByType        []TypeTotal     `json:"byType"`
}

// Summarize totals fees. TotalDiscount is the gap between original and paid.
// ByType keeps first-seen order.
func Summarize(fees []models.Fee) Report {
	r := Report{
		TotalOriginal: decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalDiscount: decimal.Zero,
		ByType:        []TypeTotal{},
	}
	idx := map[string]int{}

	for _, f := range fees {
		r.Count++
		r.TotalOriginal = r.TotalOriginal.Add(f.OriginalAmount)
		r.TotalPaid = r.TotalPaid.Add(f.AmountPaid)

		i, ok := idx[f.Type]
		if !ok {
			i = len(r.ByType)
			idx[f.Type] = i
			r.ByType = append(r.ByType, TypeTotal{Type: f.Type, Collected: decimal.Zero})
		}
		r.ByType[i].Count++
		r.ByType[i].Collected = r.ByType[i].Collected.Add(f.AmountPaid)
	}

	r.TotalDiscount = r.TotalOriginal.Sub(r.TotalPaid)
	return r
}
