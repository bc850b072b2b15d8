package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListEmployeeFilter struct {
	Search    string
	Role      string
	SortBy    string
	SortOrder string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, employee *Employee) error
	Update(ctx context.Context, db *gorm.DB, employee *Employee) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Employee, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*Employee, error)
	List(ctx context.Context, db *gorm.DB, filter ListEmployeeFilter, page pagination.Pagination) ([]*Employee, int64, error)
}
