package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the money arrived.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"
	MethodOther    PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodOther:
		return true
	}
	return false
}

// Payment records money received from a customer. Amounts are tracked per
// currency; when both are set the receipt settles in USD (USD is checked
// first) and the IQD amount is kept for the record only.
type Payment struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id"`

	CustomerID snowflake.ID  `gorm:"not null;index" json:"customerId"`
	InvoiceID  *snowflake.ID `gorm:"index" json:"invoiceId,omitempty"`

	AmountIQD decimal.Decimal `gorm:"column:amount_iqd;type:decimal(18,4);not null;default:0" json:"amountIqd"`
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;type:decimal(18,4);not null;default:0" json:"amountUsd"`

	Method      PaymentMethod `gorm:"type:text;not null;default:'cash'" json:"method"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time     `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }

// Currency reports which currency the receipt settles: USD when the USD
// amount is set, IQD otherwise.
func (p Payment) Currency() string {
	if !p.AmountUSD.IsZero() {
		return "USD"
	}
	return "IQD"
}

// Amount is the receipt's value in its own currency.
func (p Payment) Amount() decimal.Decimal {
	if !p.AmountUSD.IsZero() {
		return p.AmountUSD
	}
	return p.AmountIQD
}
