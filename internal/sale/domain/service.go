package domain

import (
	"context"
	"errors"

	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListSaleRequest struct {
	pagination.Pagination
	Type       string
	CustomerID string
	SortBy     string
	SortOrder  string
}

type ListSaleResponse struct {
	Sales      []Sale              `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreateSaleRequest struct {
	Type       SaleType
	CustomerID string
	Notes      string
}

type UpdateSaleRequest struct {
	ID    string
	Type  *SaleType
	Notes *string
}

type Service interface {
	Create(context.Context, CreateSaleRequest) (Sale, error)
	Update(context.Context, UpdateSaleRequest) (Sale, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Sale, error)
	List(context.Context, ListSaleRequest) (ListSaleResponse, error)
}

var (
	ErrInvalidType = errors.New("invalid_sale_type")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
