package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListProductRequest struct {
	pagination.Pagination
	Search     string
	CategoryID string
	SortBy     string
	SortOrder  string
}

type ListProductResponse struct {
	Products   []Product           `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreateProductRequest struct {
	SKU        string
	Name       string
	CategoryID string
	PriceIQD   decimal.Decimal
	PriceUSD   decimal.Decimal
	Cost       decimal.Decimal
	Stock      int64
	ImageURL   string
}

type UpdateProductRequest struct {
	ID         string
	Name       *string
	CategoryID *string
	PriceIQD   *decimal.Decimal
	PriceUSD   *decimal.Decimal
	Cost       *decimal.Decimal
	ImageURL   *string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Product, error)
	List(context.Context, ListProductRequest) (ListProductResponse, error)

	// AdjustStock applies a signed delta; stock never drops below zero.
	AdjustStock(ctx context.Context, id string, delta int64) (Product, error)

	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidSKU      = errors.New("invalid_sku")
	ErrSKUTaken        = errors.New("sku_taken")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrInsufficientQty = errors.New("insufficient_stock")
)
