package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Motorcycle is a catalog entry. Unlike products, motorcycles are always
// priced and settled in USD.
type Motorcycle struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	SKU       string       `gorm:"column:sku;not null;uniqueIndex" json:"sku"`
	Brand     string       `gorm:"not null" json:"brand"`
	Model     string       `gorm:"not null" json:"model"`
	Year      int          `gorm:"not null;default:0" json:"year"`
	Color     string       `gorm:"type:text" json:"color,omitempty"`
	ChassisNo string       `gorm:"column:chassis_no;type:text" json:"chassisNo,omitempty"`

	PriceUSD decimal.Decimal `gorm:"column:price_usd;type:decimal(18,4);not null;default:0" json:"priceUsd"`
	Cost     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"cost"`

	Stock    int64  `gorm:"not null;default:0" json:"stock"`
	ImageURL string `gorm:"type:text" json:"imageUrl,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Motorcycle) TableName() string { return "motorcycles" }
