package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	Search     string
	Status     string
	Kind       string
	CustomerID *snowflake.ID
	SortBy     string
	SortOrder  string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter, page pagination.Pagination) ([]*Invoice, int64, error)

	// ListByCustomer returns every non-draft invoice for a customer,
	// items included, newest first.
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*Invoice, error)

	// CountByNumberPrefix backs the per-day invoice number sequence.
	CountByNumberPrefix(ctx context.Context, db *gorm.DB, prefix string) (int64, error)

	// ListUnclassified returns rows still carrying the unknown kind,
	// items included, for the backfill pass.
	ListUnclassified(ctx context.Context, db *gorm.DB) ([]*Invoice, error)

	ReplaceItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID, items []InvoiceItem) error
}
