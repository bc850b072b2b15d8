package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListMotorcycleRequest struct {
	pagination.Pagination
	Search    string
	Brand     string
	SortBy    string
	SortOrder string
}

type ListMotorcycleResponse struct {
	Motorcycles []Motorcycle        `json:"data"`
	Pagination  pagination.PageInfo `json:"pagination"`
}

type CreateMotorcycleRequest struct {
	SKU       string
	Brand     string
	Model     string
	Year      int
	Color     string
	ChassisNo string
	PriceUSD  decimal.Decimal
	Cost      decimal.Decimal
	Stock     int64
	ImageURL  string
}

type UpdateMotorcycleRequest struct {
	ID        string
	Brand     *string
	Model     *string
	Year      *int
	Color     *string
	ChassisNo *string
	PriceUSD  *decimal.Decimal
	Cost      *decimal.Decimal
	ImageURL  *string
}

type Service interface {
	Create(context.Context, CreateMotorcycleRequest) (Motorcycle, error)
	Update(context.Context, UpdateMotorcycleRequest) (Motorcycle, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Motorcycle, error)
	List(context.Context, ListMotorcycleRequest) (ListMotorcycleResponse, error)
	AdjustStock(ctx context.Context, id string, delta int64) (Motorcycle, error)
}

var (
	ErrInvalidBrand    = errors.New("invalid_brand")
	ErrInvalidModel    = errors.New("invalid_model")
	ErrInvalidSKU      = errors.New("invalid_sku")
	ErrSKUTaken        = errors.New("sku_taken")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrInsufficientQty = errors.New("insufficient_stock")
)
