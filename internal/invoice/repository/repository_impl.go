package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/invoice/classify"
	"github.com/zagros/backoffice/internal/invoice/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, invoice *domain.Invoice) error {
	return conn.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, invoice *domain.Invoice) error {
	// Session without FullSaveAssociations so item rows are managed
	// explicitly through ReplaceItems.
	return conn.WithContext(ctx).Omit("Items").Save(invoice).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.InvoiceItem{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Invoice{}, "id = ?", id).Error
	})
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := conn.WithContext(ctx).
		Preload("Items").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

var sortColumns = map[string]string{
	"number":    "number",
	"status":    "status",
	"kind":      "kind",
	"total":     "total",
	"issuedAt":  "issued_at",
	"dueAt":     "due_at",
	"createdAt": "created_at",
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListInvoiceFilter, page pagination.Pagination) ([]*domain.Invoice, int64, error) {
	stmt := conn.WithContext(ctx).Model(&domain.Invoice{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("number LIKE ? OR notes LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		stmt = stmt.Where("kind = ?", filter.Kind)
	}
	if filter.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", *filter.CustomerID)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []*domain.Invoice
	err := page.Apply(stmt).
		Preload("Items").
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "created_at desc, id desc")).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *repo) ListByCustomer(ctx context.Context, conn *gorm.DB, customerID snowflake.ID) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	err := conn.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ? AND status <> ?", customerID, domain.InvoiceStatusDraft).
		Order("created_at desc, id desc").
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) CountByNumberPrefix(ctx context.Context, conn *gorm.DB, prefix string) (int64, error) {
	var count int64
	err := conn.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("number LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *repo) ListUnclassified(ctx context.Context, conn *gorm.DB) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	err := conn.WithContext(ctx).
		Preload("Items").
		Where("kind = ?", classify.KindUnknown).
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) ReplaceItems(ctx context.Context, conn *gorm.DB, invoiceID snowflake.ID, items []domain.InvoiceItem) error {
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.InvoiceItem{}, "invoice_id = ?", invoiceID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
