package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListPaymentRequest struct {
	pagination.Pagination
	CustomerID string
	InvoiceID  string
	Method     string
	SortBy     string
	SortOrder  string
}

type ListPaymentResponse struct {
	Payments   []Payment           `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreatePaymentRequest struct {
	CustomerID  string
	InvoiceID   string
	AmountIQD   decimal.Decimal
	AmountUSD   decimal.Decimal
	Method      PaymentMethod
	Description string
	Date        *time.Time
}

type Service interface {
	// Create records a receipt, reduces the customer's debt in the
	// receipt's currency and settles the linked invoice if any.
	Create(context.Context, CreatePaymentRequest) (Payment, error)

	// Delete reverses the receipt's effect on debt and invoice state
	// before removing it.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (Payment, error)
	List(context.Context, ListPaymentRequest) (ListPaymentResponse, error)
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidAmount  = errors.New("invalid_amount")
	ErrInvalidMethod  = errors.New("invalid_method")
	ErrInvoiceNotOpen = errors.New("invoice_not_open")
	ErrNotFound       = errors.New("not_found")
)
