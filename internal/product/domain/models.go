package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Category) TableName() string { return "product_categories" }

type Product struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	SKU        string        `gorm:"column:sku;not null;uniqueIndex" json:"sku"`
	Name       string        `gorm:"not null" json:"name"`
	CategoryID *snowflake.ID `gorm:"index" json:"categoryId,omitempty"`

	// Products are priced in dinar; the dollar price is optional and used
	// for wholesale quotes.
	PriceIQD decimal.Decimal `gorm:"column:price_iqd;type:decimal(18,4);not null;default:0" json:"priceIqd"`
	PriceUSD decimal.Decimal `gorm:"column:price_usd;type:decimal(18,4);not null;default:0" json:"priceUsd"`
	Cost     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"cost"`

	Stock    int64  `gorm:"not null;default:0" json:"stock"`
	ImageURL string `gorm:"type:text" json:"imageUrl,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
