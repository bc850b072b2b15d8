package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, customer *domain.Customer) error {
	return conn.WithContext(ctx).Create(customer).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, customer *domain.Customer) error {
	return conn.WithContext(ctx).Save(customer).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := conn.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

var sortColumns = map[string]string{
	"name":      "name",
	"city":      "city",
	"debtIqd":   "debt_iqd",
	"debtUsd":   "debt_usd",
	"createdAt": "created_at",
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, int64, error) {
	stmt := conn.WithContext(ctx).Model(&domain.Customer{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if filter.City != "" {
		stmt = stmt.Where("city = ?", filter.City)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []*domain.Customer
	err := page.Apply(stmt).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "created_at desc, id desc")).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *repo) AddDebt(ctx context.Context, conn *gorm.DB, id snowflake.ID, currency string, delta decimal.Decimal) error {
	var column string
	switch currency {
	case "IQD":
		column = "debt_iqd"
	case "USD":
		column = "debt_usd"
	default:
		return fmt.Errorf("unknown currency %q", currency)
	}

	result := conn.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
