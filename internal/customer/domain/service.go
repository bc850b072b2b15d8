package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListCustomerRequest struct {
	pagination.Pagination
	Search    string
	City      string
	SortBy    string
	SortOrder string
}

type ListCustomerResponse struct {
	Customers  []Customer          `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreateCustomerRequest struct {
	Name            string
	Phone           string
	Email           string
	Address         string
	City            string
	NotifyThreshold decimal.Decimal
	NotifyType      NotifyType
	Attachments     []string
}

type UpdateCustomerRequest struct {
	ID              string
	Name            *string
	Phone           *string
	Email           *string
	Address         *string
	City            *string
	NotifyThreshold *decimal.Decimal
	NotifyType      *NotifyType
	Attachments     *[]string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
}

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidNotifyType = errors.New("invalid_notify_type")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
