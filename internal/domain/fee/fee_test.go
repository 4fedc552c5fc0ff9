package fee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateAmounts(t *testing.T) {
	cases := []struct {
		name string
		in   Amounts
		code string
	}{
		{"paid equals original", Amounts{Original: d("50"), Paid: d("50")}, ""},
		{"partial payment", Amounts{Original: d("50"), Paid: d("20.50")}, ""},
		{"paid exceeds original", Amounts{Original: d("50"), Paid: d("60")}, httperr.CodeInvalidAmounts},
		{"negative paid", Amounts{Original: d("50"), Paid: d("-1")}, httperr.CodeInvalidAmounts},
		{"negative original", Amounts{Original: d("-5"), Paid: d("0")}, httperr.CodeInvalidAmounts},
		{
			"percentage over 100",
			Amounts{Original: d("50"), Paid: d("0"), DiscountType: DiscountPercentage, DiscountApplied: d("101")},
			httperr.CodeInvalidAmounts,
		},
		{
			"percentage of 100",
			Amounts{Original: d("50"), Paid: d("0"), DiscountType: DiscountPercentage, DiscountApplied: d("100")},
			"",
		},
		{
			"flat over original",
			Amounts{Original: d("50"), Paid: d("0"), DiscountType: DiscountFlat, DiscountApplied: d("51")},
			httperr.CodeInvalidAmounts,
		},
		{
			"negative discount",
			Amounts{Original: d("50"), Paid: d("0"), DiscountType: DiscountFlat, DiscountApplied: d("-1")},
			httperr.CodeInvalidAmounts,
		},
		{
			"discount without type",
			Amounts{Original: d("50"), Paid: d("40"), DiscountApplied: d("10")},
			httperr.CodeValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType("")
	require.NoError(t, err)
	assert.Equal(t, TypeMonthly, got)

	got, err = ParseType(" yearly ")
	require.NoError(t, err)
	assert.Equal(t, TypeYearly, got)

	_, err = ParseType("WEEKLY")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestParseDiscountType(t *testing.T) {
	got, err := ParseDiscountType("flat")
	require.NoError(t, err)
	assert.Equal(t, DiscountFlat, got)

	got, err = ParseDiscountType("")
	require.NoError(t, err)
	assert.Equal(t, DiscountNone, got)

	_, err = ParseDiscountType("coupon")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestSummarize(t *testing.T) {
	fees := []models.Fee{
		{OriginalAmount: d("100"), AmountPaid: d("80"), Type: "MONTHLY"},
		{OriginalAmount: d("30"), AmountPaid: d("30"), Type: "ADMISSION"},
		{OriginalAmount: d("100"), AmountPaid: d("100"), Type: "MONTHLY"},
	}

	r := Summarize(fees)

	assert.Equal(t, 3, r.Count)
	assert.True(t, r.TotalOriginal.Equal(d("230")))
	assert.True(t, r.TotalPaid.Equal(d("210")))
	assert.True(t, r.TotalDiscount.Equal(d("20")))

	require.Len(t, r.ByType, 2)
	assert.Equal(t, "MONTHLY", r.ByType[0].Type)
	assert.Equal(t, 2, r.ByType[0].Count)
	assert.True(t, r.ByType[0].Collected.Equal(d("180")))
	assert.Equal(t, "ADMISSION", r.ByType[1].Type)
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(nil)
	assert.Zero(t, r.Count)
	assert.True(t, r.TotalPaid.IsZero())
	assert.NotNil(t, r.ByType)
}
