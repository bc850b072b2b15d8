package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SaleType distinguishes wholesale (JUMLA) from retail (MUFRAD).
type SaleType string

const (
	SaleTypeWholesale SaleType = "JUMLA"
	SaleTypeRetail    SaleType = "MUFRAD"
)

func (t SaleType) Valid() bool {
	return t == SaleTypeWholesale || t == SaleTypeRetail
}

type Sale struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	Type       SaleType      `gorm:"type:text;not null;default:'MUFRAD'" json:"type"`
	CustomerID *snowflake.ID `gorm:"index" json:"customerId,omitempty"`
	Notes      string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Sale) TableName() string { return "sales" }
