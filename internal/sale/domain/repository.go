package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListSaleFilter struct {
	Type       string
	CustomerID *snowflake.ID
	SortBy     string
	SortOrder  string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sale *Sale) error
	Update(ctx context.Context, db *gorm.DB, sale *Sale) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Sale, error)
	List(ctx context.Context, db *gorm.DB, filter ListSaleFilter, page pagination.Pagination) ([]*Sale, int64, error)
}
