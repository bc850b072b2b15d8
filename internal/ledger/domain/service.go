package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type HistoryRepository interface {
	Insert(ctx context.Context, db *gorm.DB, record *BalanceHistory) error
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*BalanceHistory, error)
}

type AddAdjustmentRequest struct {
	CustomerID  string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

type Service interface {
	// CustomerActivity rebuilds the chronological debt feed for a customer
	// from invoices, payments and balance history. Sources are fetched
	// concurrently; a failing source degrades to empty rather than failing
	// the whole feed.
	CustomerActivity(ctx context.Context, customerID string) ([]Entry, error)

	// AddAdjustment records a manual debt correction.
	AddAdjustment(ctx context.Context, req AddAdjustmentRequest) (BalanceHistory, error)
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrNotFound        = errors.New("not_found")
)
