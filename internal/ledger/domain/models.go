package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// HistorySourceType tags what produced a balance-history row. Invoice and
// payment rows also exist in their own tables; the activity feed skips them
// here to avoid double counting.
type HistorySourceType string

const (
	SourceInvoice    HistorySourceType = "invoice"
	SourcePayment    HistorySourceType = "payment"
	SourceAdjustment HistorySourceType = "adjustment"
	SourceOpening    HistorySourceType = "opening"
)

// BalanceHistory is an append-only record of a debt-affecting event.
type BalanceHistory struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID      `gorm:"not null;index" json:"customerId"`
	SourceType HistorySourceType `gorm:"type:text;not null" json:"sourceType"`
	SourceID   *snowflake.ID     `gorm:"index" json:"sourceId,omitempty"`

	// Amount is signed: positive increases debt, negative reduces it.
	Amount   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Currency string          `gorm:"type:text;not null" json:"currency"`

	Description string    `gorm:"type:text" json:"description,omitempty"`
	OccurredAt  time.Time `gorm:"not null;index" json:"occurredAt"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (BalanceHistory) TableName() string { return "customer_balance_history" }

// EntryType tags a row in the reconstructed activity feed.
type EntryType string

const (
	EntryInvoice EntryType = "invoice"
	EntryPayment EntryType = "payment"
	EntryBalance EntryType = "balance"
)

// Entry is one row of a customer's activity feed. Invoices appear positive,
// payments negative.
type Entry struct {
	ID          snowflake.ID    `json:"id"`
	Type        EntryType       `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}
