package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Fee struct {
	Base
	MemberID uuid.UUID `gorm:"type:uuid;not null;index" json:"memberId"`
	Member   *Member   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member,omitempty"`

	GymID uuid.UUID `gorm:"type:uuid;not null;index" json:"gymId"`

	TakenByID uuid.UUID `gorm:"type:uuid;not null" json:"takenById"`
	TakenBy   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"takenBy,omitempty"`

	OriginalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"originalAmount"`
	AmountPaid      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amountPaid"`
	DiscountType    string          `gorm:"size:20" json:"discountType,omitempty"`
	DiscountApplied decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"discountApplied"`
	Type            string          `gorm:"size:30;not null" json:"type"`
}
