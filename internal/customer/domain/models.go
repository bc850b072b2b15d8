package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// NotifyType selects how a customer is warned when debt crosses the
// configured threshold.
type NotifyType string

const (
	NotifyNone  NotifyType = "none"
	NotifySMS   NotifyType = "sms"
	NotifyPhone NotifyType = "phone"
)

type Customer struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"id"`
	Name    string       `gorm:"not null" json:"name"`
	Phone   string       `gorm:"type:text" json:"phone,omitempty"`
	Email   string       `gorm:"type:text" json:"email,omitempty"`
	Address string       `gorm:"type:text" json:"address,omitempty"`
	City    string       `gorm:"type:text" json:"city,omitempty"`

	// Debts are tracked per currency; invoices add, payments subtract.
	DebtIQD decimal.Decimal `gorm:"column:debt_iqd;type:decimal(18,4);not null;default:0" json:"debtIqd"`
	DebtUSD decimal.Decimal `gorm:"column:debt_usd;type:decimal(18,4);not null;default:0" json:"debtUsd"`

	NotifyThreshold decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"notifyThreshold"`
	NotifyType      NotifyType      `gorm:"type:text;not null;default:'none'" json:"notifyType"`

	// Attachments is a JSON-encoded list of file URLs.
	Attachments datatypes.JSON `gorm:"type:jsonb" json:"attachments,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Customer) TableName() string { return "customers" }
