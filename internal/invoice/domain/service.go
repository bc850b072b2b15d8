package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListInvoiceRequest struct {
	pagination.Pagination
	Search     string
	Status     string
	Kind       string
	CustomerID string
	SortBy     string
	SortOrder  string
}

type ListInvoiceResponse struct {
	Invoices   []Invoice           `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreateInvoiceItemRequest struct {
	ProductID    string
	MotorcycleID string
	Description  string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Discount     decimal.Decimal
	TaxRate      decimal.Decimal
	Notes        string
}

type CreateInvoiceRequest struct {
	CustomerID string
	SaleID     string
	Notes      string
	Discount   decimal.Decimal
	DueAt      *time.Time
	Items      []CreateInvoiceItemRequest
}

type UpdateInvoiceRequest struct {
	ID       string
	Notes    *string
	Discount *decimal.Decimal
	DueAt    *time.Time
	Items    *[]CreateInvoiceItemRequest
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	Update(context.Context, UpdateInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(context.Context, ListInvoiceRequest) (ListInvoiceResponse, error)

	// Finalize issues the invoice: assigns the issue date, moves the
	// total onto the customer's debt and records the balance event.
	Finalize(ctx context.Context, id string) (Invoice, error)
	Cancel(ctx context.Context, id string) (Invoice, error)

	// Reclassify backfills kind/currency on rows that predate the explicit
	// columns by re-running the notes-marker heuristics. Returns the number
	// of rows updated.
	Reclassify(ctx context.Context) (int64, error)
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidItems  = errors.New("invalid_items")
	ErrNotFound      = errors.New("not_found")
	ErrNotDraft      = errors.New("invoice_not_draft")
	ErrAlreadyClosed = errors.New("invoice_closed")
)
