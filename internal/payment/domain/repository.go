package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListPaymentFilter struct {
	CustomerID *snowflake.ID
	InvoiceID  *snowflake.ID
	Method     string
	SortBy     string
	SortOrder  string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Payment, error)
	List(ctx context.Context, db *gorm.DB, filter ListPaymentFilter, page pagination.Pagination) ([]*Payment, int64, error)

	// ListByCustomer returns every receipt for a customer, newest first.
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*Payment, error)
}
