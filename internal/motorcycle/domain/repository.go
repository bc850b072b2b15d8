package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListMotorcycleFilter struct {
	Search    string
	Brand     string
	SortBy    string
	SortOrder string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, motorcycle *Motorcycle) error
	Update(ctx context.Context, db *gorm.DB, motorcycle *Motorcycle) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Motorcycle, error)
	List(ctx context.Context, db *gorm.DB, filter ListMotorcycleFilter, page pagination.Pagination) ([]*Motorcycle, int64, error)
	AdjustStock(ctx context.Context, db *gorm.DB, id snowflake.ID, delta int64) error
}
