// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/internal/invoice/classify"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusFinalized     InvoiceStatus = "finalized"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// Invoice is a customer-facing bill. Kind and Currency are persisted at
// write time; the notes-marker heuristics only run for legacy backfill.
type Invoice struct {
	ID     snowflake.ID  `gorm:"primaryKey" json:"id"`
	Number string        `gorm:"not null;uniqueIndex" json:"number"`
	Status InvoiceStatus `gorm:"type:text;not null;default:'draft'" json:"status"`

	Kind     classify.Kind `gorm:"type:text;not null;default:'unknown'" json:"kind"`
	Currency string        `gorm:"type:text;not null;default:'IQD'" json:"currency"`

	Subtotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"subtotal"`
	Tax        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax"`
	Discount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amountPaid"`
	AmountDue  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amountDue"`

	IssuedAt *time.Time `json:"issuedAt,omitempty"`
	DueAt    *time.Time `json:"dueAt,omitempty"`
	PaidAt   *time.Time `json:"paidAt,omitempty"`

	CustomerID *snowflake.ID `gorm:"index" json:"customerId,omitempty"`
	SaleID     *snowflake.ID `gorm:"index" json:"saleId,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is a line on an invoice. Lines may reference a product or a
// motorcycle; lines with neither carry their subject in Notes (legacy
// marker format).
type InvoiceItem struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	InvoiceID    snowflake.ID  `gorm:"not null;index" json:"invoiceId"`
	ProductID    *snowflake.ID `gorm:"index" json:"productId,omitempty"`
	MotorcycleID *snowflake.ID `gorm:"index" json:"motorcycleId,omitempty"`

	Description string          `gorm:"type:text" json:"description"`
	Quantity    int64           `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"unitPrice"`
	Discount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"taxRate"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"lineTotal"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
