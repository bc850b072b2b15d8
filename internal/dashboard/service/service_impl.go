package service

import (
	"context"
	"time"

	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/internal/dashboard/domain"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	motorcycledomain "github.com/zagros/backoffice/internal/motorcycle/domain"
	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
	productdomain "github.com/zagros/backoffice/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stock at or below this level shows up on the reorder list.
const lowStockThreshold = 5

const topDebtorLimit = 5
const recentInvoiceLimit = 10

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	conn := s.db.WithContext(ctx)
	var summary domain.Summary

	if err := s.counts(conn, &summary.Counts); err != nil {
		return domain.Summary{}, err
	}

	// Revenue counts every issued invoice, paid or not; receivables is
	// what is still outstanding on customer books.
	err := conn.Model(&invoicedomain.Invoice{}).
		Select(
			"COALESCE(SUM(CASE WHEN currency = 'IQD' THEN total ELSE 0 END), 0) AS iqd, "+
				"COALESCE(SUM(CASE WHEN currency = 'USD' THEN total ELSE 0 END), 0) AS usd").
		Where("status IN ?", []invoicedomain.InvoiceStatus{
			invoicedomain.InvoiceStatusFinalized,
			invoicedomain.InvoiceStatusPartiallyPaid,
			invoicedomain.InvoiceStatusPaid,
		}).
		Scan(&summary.Revenue).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = conn.Model(&customerdomain.Customer{}).
		Select("COALESCE(SUM(debt_iqd), 0) AS iqd, COALESCE(SUM(debt_usd), 0) AS usd").
		Scan(&summary.Receivables).Error
	if err != nil {
		return domain.Summary{}, err
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	err = conn.Model(&paymentdomain.Payment{}).
		Select("COALESCE(SUM(amount_iqd), 0) AS iqd, COALESCE(SUM(amount_usd), 0) AS usd").
		Where("date >= ?", startOfDay).
		Scan(&summary.PaymentsToday).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = conn.Model(&customerdomain.Customer{}).
		Select("id, name, debt_iqd, debt_usd").
		Where("debt_iqd > 0 OR debt_usd > 0").
		Order("debt_usd desc, debt_iqd desc").
		Limit(topDebtorLimit).
		Scan(&summary.TopDebtors).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = conn.Model(&productdomain.Product{}).
		Select("id, sku, name, stock").
		Where("stock <= ?", lowStockThreshold).
		Order("stock asc, name asc").
		Scan(&summary.LowStock).Error
	if err != nil {
		return domain.Summary{}, err
	}

	err = conn.Model(&invoicedomain.Invoice{}).
		Select("id, number, status, kind, total, currency, issued_at").
		Where("status <> ?", invoicedomain.InvoiceStatusDraft).
		Order("created_at desc, id desc").
		Limit(recentInvoiceLimit).
		Scan(&summary.RecentInvoices).Error
	if err != nil {
		return domain.Summary{}, err
	}

	return summary, nil
}

func (s *Service) counts(conn *gorm.DB, counts *domain.Counts) error {
	tables := []struct {
		model any
		dest  *int64
	}{
		{&customerdomain.Customer{}, &counts.Customers},
		{&productdomain.Product{}, &counts.Products},
		{&motorcycledomain.Motorcycle{}, &counts.Motorcycles},
		{&invoicedomain.Invoice{}, &counts.Invoices},
		{&employeedomain.Employee{}, &counts.Employees},
	}
	for _, table := range tables {
		if err := conn.Model(table.model).Count(table.dest).Error; err != nil {
			return err
		}
	}
	return nil
}
