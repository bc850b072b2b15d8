package domain

import (
	"context"
	"errors"

	"github.com/zagros/backoffice/pkg/db/pagination"
)

type ListEmployeeRequest struct {
	pagination.Pagination
	Search    string
	Role      string
	SortBy    string
	SortOrder string
}

type ListEmployeeResponse struct {
	Employees  []Employee          `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type CreateEmployeeRequest struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Role     Role
	Password string
}

type UpdateEmployeeRequest struct {
	ID       string
	Name     *string
	Email    *string
	Phone    *string
	Role     *Role
	Status   *Status
	Password *string
}

type Service interface {
	Create(context.Context, CreateEmployeeRequest) (Employee, error)
	Update(context.Context, UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Employee, error)
	List(context.Context, ListEmployeeRequest) (ListEmployeeResponse, error)
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidUsername = errors.New("invalid_username")
	ErrInvalidRole     = errors.New("invalid_role")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrInvalidID       = errors.New("invalid_id")
	ErrUsernameTaken   = errors.New("username_taken")
	ErrNotFound        = errors.New("not_found")
)
