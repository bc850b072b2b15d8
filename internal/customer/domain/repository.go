package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListCustomerFilter struct {
	Search    string
	City      string
	SortBy    string
	SortOrder string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListCustomerFilter, page pagination.Pagination) ([]*Customer, int64, error)

	// AddDebt applies a signed delta to one of the per-currency balances.
	// currency must be "IQD" or "USD".
	AddDebt(ctx context.Context, db *gorm.DB, id snowflake.ID, currency string, delta decimal.Decimal) error
}
