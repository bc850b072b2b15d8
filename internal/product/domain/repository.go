package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListProductFilter struct {
	Search     string
	CategoryID *snowflake.ID
	SortBy     string
	SortOrder  string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductFilter, page pagination.Pagination) ([]*Product, int64, error)
	ListAll(ctx context.Context, db *gorm.DB, filter ListProductFilter) ([]*Product, error)
	AdjustStock(ctx context.Context, db *gorm.DB, id snowflake.ID, delta int64) error

	InsertCategory(ctx context.Context, db *gorm.DB, category *Category) error
	ListCategories(ctx context.Context, db *gorm.DB) ([]*Category, error)
}
