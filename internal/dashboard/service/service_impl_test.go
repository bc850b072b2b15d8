package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/internal/dashboard/domain"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	motorcycledomain "github.com/zagros/backoffice/internal/motorcycle/domain"
	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
	productdomain "github.com/zagros/backoffice/internal/product/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&customerdomain.Customer{},
		&productdomain.Product{},
		&motorcycledomain.Motorcycle{},
		&invoicedomain.Invoice{},
		&paymentdomain.Payment{},
		&employeedomain.Employee{},
	))

	node, err := snowflake.NewNode(4)
	require.NoError(t, err)

	svc := New(Params{DB: conn, Log: zap.NewNop()})
	return svc, conn, node
}

func TestSummary(t *testing.T) {
	svc, conn, node := setup(t)
	now := time.Now().UTC()

	require.NoError(t, conn.Create(&customerdomain.Customer{
		ID:        node.Generate(),
		Name:      "Hemin Salah",
		DebtIQD:   decimal.NewFromInt(75000),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	require.NoError(t, conn.Create(&productdomain.Product{
		ID:        node.Generate(),
		SKU:       "OIL-FILTER",
		Name:      "Oil filter",
		Stock:     2,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-20260301-000001",
		Status:    invoicedomain.InvoiceStatusFinalized,
		Currency:  "IQD",
		Total:     decimal.NewFromInt(75000),
		IssuedAt:  &now,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-20260301-000002",
		Status:    invoicedomain.InvoiceStatusDraft,
		Currency:  "IQD",
		Total:     decimal.NewFromInt(99999),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	require.NoError(t, conn.Create(&paymentdomain.Payment{
		ID:         node.Generate(),
		CustomerID: node.Generate(),
		AmountIQD:  decimal.NewFromInt(20000),
		Method:     paymentdomain.MethodCash,
		Date:       now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Counts.Customers)
	assert.Equal(t, int64(1), summary.Counts.Products)
	assert.Equal(t, int64(2), summary.Counts.Invoices)

	// Drafts do not count toward revenue.
	assert.True(t, summary.Revenue.IQD.Equal(decimal.NewFromInt(75000)))
	assert.True(t, summary.Revenue.USD.IsZero())

	assert.True(t, summary.Receivables.IQD.Equal(decimal.NewFromInt(75000)))
	assert.True(t, summary.PaymentsToday.IQD.Equal(decimal.NewFromInt(20000)))

	require.Len(t, summary.TopDebtors, 1)
	assert.Equal(t, "Hemin Salah", summary.TopDebtors[0].Name)

	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "OIL-FILTER", summary.LowStock[0].SKU)

	require.Len(t, summary.RecentInvoices, 1)
	assert.Equal(t, "INV-20260301-000001", summary.RecentInvoices[0].Number)
}
