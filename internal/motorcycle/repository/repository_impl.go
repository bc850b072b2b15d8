package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/motorcycle/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, motorcycle *domain.Motorcycle) error {
	return conn.WithContext(ctx).Create(motorcycle).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, motorcycle *domain.Motorcycle) error {
	return conn.WithContext(ctx).Save(motorcycle).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Delete(&domain.Motorcycle{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Motorcycle, error) {
	var motorcycle domain.Motorcycle
	err := conn.WithContext(ctx).First(&motorcycle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &motorcycle, nil
}

var sortColumns = map[string]string{
	"brand":     "brand",
	"model":     "model",
	"year":      "year",
	"priceUsd":  "price_usd",
	"stock":     "stock",
	"createdAt": "created_at",
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListMotorcycleFilter, page pagination.Pagination) ([]*domain.Motorcycle, int64, error) {
	stmt := conn.WithContext(ctx).Model(&domain.Motorcycle{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("brand LIKE ? OR model LIKE ? OR sku LIKE ? OR chassis_no LIKE ?", pattern, pattern, pattern, pattern)
	}
	if filter.Brand != "" {
		stmt = stmt.Where("brand = ?", filter.Brand)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var motorcycles []*domain.Motorcycle
	err := page.Apply(stmt).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "created_at desc, id desc")).
		Find(&motorcycles).Error
	if err != nil {
		return nil, 0, err
	}
	return motorcycles, total, nil
}

func (r *repo) AdjustStock(ctx context.Context, conn *gorm.DB, id snowflake.ID, delta int64) error {
	stmt := conn.WithContext(ctx).
		Model(&domain.Motorcycle{}).
		Where("id = ?", id)
	if delta < 0 {
		stmt = stmt.Where("stock >= ?", -delta)
	}
	result := stmt.Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientQty
	}
	return nil
}
