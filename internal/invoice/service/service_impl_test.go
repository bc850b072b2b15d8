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
	customerrepo "github.com/zagros/backoffice/internal/customer/repository"
	"github.com/zagros/backoffice/internal/invoice/classify"
	"github.com/zagros/backoffice/internal/invoice/domain"
	invoicerepo "github.com/zagros/backoffice/internal/invoice/repository"
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
	ledgerrepo "github.com/zagros/backoffice/internal/ledger/repository"
	productrepo "github.com/zagros/backoffice/internal/product/repository"
	saledomain "github.com/zagros/backoffice/internal/sale/domain"
	salerepo "github.com/zagros/backoffice/internal/sale/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&customerdomain.Customer{},
		&saledomain.Sale{},
		&domain.Invoice{},
		&domain.InvoiceItem{},
		&ledgerdomain.BalanceHistory{},
	))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	svc := New(Params{
		DB:        conn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      invoicerepo.Provide(),
		Customers: customerrepo.Provide(),
		Sales:     salerepo.Provide(),
		Products:  productrepo.Provide(),
		History:   ledgerrepo.Provide(),
	})
	return svc.(*Service), conn, node
}

func seedCustomer(t *testing.T, conn *gorm.DB, node *snowflake.Node) customerdomain.Customer {
	t.Helper()
	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Name:      "Shilan Omar",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&customer).Error)
	return customer
}

func seedSale(t *testing.T, conn *gorm.DB, node *snowflake.Node, saleType saledomain.SaleType) saledomain.Sale {
	t.Helper()
	sale := saledomain.Sale{
		ID:        node.Generate(),
		Type:      saleType,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&sale).Error)
	return sale
}

func TestCreateRetailProductInvoice(t *testing.T) {
	svc, _, _ := setupService(t)

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Items: []domain.CreateInvoiceItemRequest{
			{Description: "Oil filter", Quantity: 3, UnitPrice: decimal.NewFromInt(5000)},
			{Description: "Brake pads", Quantity: 1, UnitPrice: decimal.NewFromInt(12000)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, classify.KindRetailProduct, invoice.Kind)
	assert.Equal(t, classify.CurrencyIQD, invoice.Currency)
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(27000)))
	assert.True(t, invoice.Total.Equal(decimal.NewFromInt(27000)))
	assert.Len(t, invoice.Items, 2)

	prefix := "INV-" + time.Now().UTC().Format("20060102") + "-"
	assert.Equal(t, prefix+"000001", invoice.Number)
}

func TestCreateNumbersAreSequentialPerDay(t *testing.T) {
	svc, _, _ := setupService(t)

	first, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Items: []domain.CreateInvoiceItemRequest{{Description: "A", UnitPrice: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Items: []domain.CreateInvoiceItemRequest{{Description: "B", UnitPrice: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	prefix := "INV-" + time.Now().UTC().Format("20060102") + "-"
	assert.Equal(t, prefix+"000001", first.Number)
	assert.Equal(t, prefix+"000002", second.Number)
}

func TestCreateWholesaleMotorcycleInvoice(t *testing.T) {
	svc, conn, node := setupService(t)
	sale := seedSale(t, conn, node, saledomain.SaleTypeWholesale)

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		SaleID: sale.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{Notes: "MOTORCYCLE: Honda CG125 2025", Quantity: 2, UnitPrice: decimal.NewFromInt(1400)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, classify.KindWholesaleMotorcycle, invoice.Kind)
	assert.Equal(t, classify.CurrencyUSD, invoice.Currency)
	assert.True(t, invoice.Total.Equal(decimal.NewFromInt(2800)))
}

func TestCreateMotorcycleRefForcesMotorcycleKind(t *testing.T) {
	svc, _, node := setupService(t)

	motorcycleID := node.Generate()
	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Items: []domain.CreateInvoiceItemRequest{
			{MotorcycleID: motorcycleID.String(), Description: "CG125", UnitPrice: decimal.NewFromInt(1500)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, classify.KindRetailMotorcycle, invoice.Kind)
	assert.Equal(t, classify.CurrencyUSD, invoice.Currency)
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidItems)
}

func TestFinalizeMovesTotalOntoCustomerDebt(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{Description: "Oil filter", Quantity: 10, UnitPrice: decimal.NewFromInt(5000)},
		},
	})
	require.NoError(t, err)

	finalized, err := svc.Finalize(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusFinalized, finalized.Status)
	require.NotNil(t, finalized.IssuedAt)
	assert.True(t, finalized.AmountDue.Equal(finalized.Total))

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.Equal(decimal.NewFromInt(50000)))

	var history ledgerdomain.BalanceHistory
	require.NoError(t, conn.First(&history, "customer_id = ?", customer.ID).Error)
	assert.Equal(t, ledgerdomain.SourceInvoice, history.SourceType)
	assert.True(t, history.Amount.Equal(decimal.NewFromInt(50000)))

	// A second finalize must be refused.
	_, err = svc.Finalize(context.Background(), invoice.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotDraft)
}

func TestCancelIssuedInvoiceReversesDebt(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{Description: "Chain kit", UnitPrice: decimal.NewFromInt(30000)},
		},
	})
	require.NoError(t, err)
	_, err = svc.Finalize(context.Background(), invoice.ID.String())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusCancelled, cancelled.Status)

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.IsZero())

	_, err = svc.Cancel(context.Background(), invoice.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyClosed)
}

func TestUpdateRefusesNonDraft(t *testing.T) {
	svc, _, _ := setupService(t)

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Items: []domain.CreateInvoiceItemRequest{
			{Description: "Sprocket", UnitPrice: decimal.NewFromInt(8000)},
		},
	})
	require.NoError(t, err)
	_, err = svc.Finalize(context.Background(), invoice.ID.String())
	require.NoError(t, err)

	notes := "changed"
	_, err = svc.Update(context.Background(), domain.UpdateInvoiceRequest{
		ID:    invoice.ID.String(),
		Notes: &notes,
	})
	assert.ErrorIs(t, err, domain.ErrNotDraft)
}

func TestReclassifyBackfillsLegacyRows(t *testing.T) {
	svc, conn, node := setupService(t)

	// Simulate a row imported before kind/currency existed: stored with
	// the unknown kind and only the notes marker to go on.
	legacy := domain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-LEGACY-1",
		Status:    domain.InvoiceStatusFinalized,
		Kind:      classify.KindUnknown,
		Currency:  classify.CurrencyIQD,
		Notes:     "[INVOICE_TYPE:retail] MOTORCYCLE Suzuki",
		Total:     decimal.NewFromInt(1500),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&legacy).Error)

	updated, err := svc.Reclassify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	var stored domain.Invoice
	require.NoError(t, conn.First(&stored, "id = ?", legacy.ID).Error)
	assert.Equal(t, classify.KindRetailMotorcycle, stored.Kind)
	assert.Equal(t, classify.CurrencyUSD, stored.Currency)
}

func TestReadsReportOverduePastDueDate(t *testing.T) {
	svc, conn, node := setupService(t)

	past := time.Now().UTC().Add(-48 * time.Hour)
	future := time.Now().UTC().Add(48 * time.Hour)
	issued := time.Now().UTC().Add(-96 * time.Hour)

	overdue := domain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-20260101-000001",
		Status:    domain.InvoiceStatusFinalized,
		Currency:  "IQD",
		Total:     decimal.NewFromInt(100000),
		IssuedAt:  &issued,
		DueAt:     &past,
		CreatedAt: issued,
		UpdatedAt: issued,
	}
	require.NoError(t, conn.Create(&overdue).Error)
	current := domain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-20260101-000002",
		Status:    domain.InvoiceStatusFinalized,
		Currency:  "IQD",
		Total:     decimal.NewFromInt(50000),
		IssuedAt:  &issued,
		DueAt:     &future,
		CreatedAt: issued,
		UpdatedAt: issued,
	}
	require.NoError(t, conn.Create(&current).Error)
	paid := domain.Invoice{
		ID:        node.Generate(),
		Number:    "INV-20260101-000003",
		Status:    domain.InvoiceStatusPaid,
		Currency:  "IQD",
		Total:     decimal.NewFromInt(75000),
		IssuedAt:  &issued,
		DueAt:     &past,
		CreatedAt: issued,
		UpdatedAt: issued,
	}
	require.NoError(t, conn.Create(&paid).Error)

	got, err := svc.GetByID(context.Background(), overdue.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusOverdue, got.Status)

	// Derived at read time only: the row keeps its stored status.
	var stored domain.Invoice
	require.NoError(t, conn.First(&stored, "id = ?", overdue.ID).Error)
	assert.Equal(t, domain.InvoiceStatusFinalized, stored.Status)

	resp, err := svc.List(context.Background(), domain.ListInvoiceRequest{})
	require.NoError(t, err)
	byNumber := make(map[string]domain.InvoiceStatus, len(resp.Invoices))
	for _, inv := range resp.Invoices {
		byNumber[inv.Number] = inv.Status
	}
	assert.Equal(t, domain.InvoiceStatusOverdue, byNumber[overdue.Number])
	assert.Equal(t, domain.InvoiceStatusFinalized, byNumber[current.Number])
	assert.Equal(t, domain.InvoiceStatusPaid, byNumber[paid.Number])
}
