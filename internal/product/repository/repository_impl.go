package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/product/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, product *domain.Product) error {
	return conn.WithContext(ctx).Create(product).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, product *domain.Product) error {
	return conn.WithContext(ctx).Save(product).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := conn.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

var sortColumns = map[string]string{
	"name":      "name",
	"sku":       "sku",
	"priceIqd":  "price_iqd",
	"priceUsd":  "price_usd",
	"stock":     "stock",
	"createdAt": "created_at",
}

func (r *repo) buildList(ctx context.Context, conn *gorm.DB, filter domain.ListProductFilter) *gorm.DB {
	stmt := conn.WithContext(ctx).Model(&domain.Product{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("name LIKE ? OR sku LIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		stmt = stmt.Where("category_id = ?", *filter.CategoryID)
	}
	return stmt
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListProductFilter, page pagination.Pagination) ([]*domain.Product, int64, error) {
	stmt := r.buildList(ctx, conn, filter)

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*domain.Product
	err := page.Apply(stmt).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "created_at desc, id desc")).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repo) ListAll(ctx context.Context, conn *gorm.DB, filter domain.ListProductFilter) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.buildList(ctx, conn, filter).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "name asc, id asc")).
		Find(&products).Error
	return products, err
}

func (r *repo) AdjustStock(ctx context.Context, conn *gorm.DB, id snowflake.ID, delta int64) error {
	stmt := conn.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id)
	if delta < 0 {
		// Refuse to go negative; zero rows affected surfaces as a stock error.
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

func (r *repo) InsertCategory(ctx context.Context, conn *gorm.DB, category *domain.Category) error {
	return conn.WithContext(ctx).Create(category).Error
}

func (r *repo) ListCategories(ctx context.Context, conn *gorm.DB) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := conn.WithContext(ctx).Order("name asc").Find(&categories).Error
	return categories, err
}
