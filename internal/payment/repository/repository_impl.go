package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/payment/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, payment *domain.Payment) error {
	return conn.WithContext(ctx).Create(payment).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Delete(&domain.Payment{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Payment, error) {
	var payment domain.Payment
	err := conn.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

var sortColumns = map[string]string{
	"date":      "date",
	"amountIqd": "amount_iqd",
	"amountUsd": "amount_usd",
	"method":    "method",
	"createdAt": "created_at",
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListPaymentFilter, page pagination.Pagination) ([]*domain.Payment, int64, error) {
	stmt := conn.WithContext(ctx).Model(&domain.Payment{})
	if filter.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.InvoiceID != nil {
		stmt = stmt.Where("invoice_id = ?", *filter.InvoiceID)
	}
	if filter.Method != "" {
		stmt = stmt.Where("method = ?", filter.Method)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []*domain.Payment
	err := page.Apply(stmt).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "date desc, id desc")).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *repo) ListByCustomer(ctx context.Context, conn *gorm.DB, customerID snowflake.ID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := conn.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date desc, id desc").
		Find(&payments).Error
	return payments, err
}
