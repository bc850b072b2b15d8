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
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	invoicerepo "github.com/zagros/backoffice/internal/invoice/repository"
	"github.com/zagros/backoffice/internal/ledger/domain"
	ledgerrepo "github.com/zagros/backoffice/internal/ledger/repository"
	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
	paymentrepo "github.com/zagros/backoffice/internal/payment/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&customerdomain.Customer{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&paymentdomain.Payment{},
		&domain.BalanceHistory{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:        conn,
		Log:       zap.NewNop(),
		GenID:     node,
		History:   ledgerrepo.Provide(),
		Customers: customerrepo.Provide(),
		Invoices:  invoicerepo.Provide(),
		Payments:  paymentrepo.Provide(),
	})
	return svc.(*Service), conn, node
}

func seedCustomer(t *testing.T, conn *gorm.DB, node *snowflake.Node) customerdomain.Customer {
	t.Helper()
	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Name:      "Karwan Aziz",
		City:      "Sulaymaniyah",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&customer).Error)
	return customer
}

func TestCustomerActivityMergesSources(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issued1 := base.Add(-72 * time.Hour)
	issued2 := base.Add(-24 * time.Hour)
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260226-000001",
		Status:     invoicedomain.InvoiceStatusFinalized,
		Currency:   "IQD",
		Total:      decimal.NewFromInt(250000),
		IssuedAt:   &issued1,
		CustomerID: &customer.ID,
		CreatedAt:  issued1,
	}).Error)
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260228-000001",
		Status:     invoicedomain.InvoiceStatusFinalized,
		Currency:   "USD",
		Total:      decimal.NewFromInt(1200),
		IssuedAt:   &issued2,
		CustomerID: &customer.ID,
		CreatedAt:  issued2,
	}).Error)

	// Drafts never show up in the feed.
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260301-000001",
		Status:     invoicedomain.InvoiceStatusDraft,
		Currency:   "IQD",
		Total:      decimal.NewFromInt(999),
		CustomerID: &customer.ID,
		CreatedAt:  base,
	}).Error)

	require.NoError(t, conn.Create(&paymentdomain.Payment{
		ID:         node.Generate(),
		CustomerID: customer.ID,
		AmountIQD:  decimal.NewFromInt(100000),
		Method:     paymentdomain.MethodCash,
		Date:       base.Add(-48 * time.Hour),
		CreatedAt:  base,
	}).Error)

	require.NoError(t, conn.Create(&domain.BalanceHistory{
		ID:          node.Generate(),
		CustomerID:  customer.ID,
		SourceType:  domain.SourceOpening,
		Amount:      decimal.NewFromInt(50000),
		Currency:    "IQD",
		Description: "opening balance",
		OccurredAt:  base.Add(-96 * time.Hour),
		CreatedAt:   base,
	}).Error)

	// Invoice-sourced history must be skipped: its invoice is already in
	// the feed through the invoices table.
	require.NoError(t, conn.Create(&domain.BalanceHistory{
		ID:         node.Generate(),
		CustomerID: customer.ID,
		SourceType: domain.SourceInvoice,
		Amount:     decimal.NewFromInt(250000),
		Currency:   "IQD",
		OccurredAt: issued1,
		CreatedAt:  base,
	}).Error)

	entries, err := svc.CustomerActivity(context.Background(), customer.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Newest first.
	assert.Equal(t, domain.EntryInvoice, entries[0].Type)
	assert.Equal(t, "USD", entries[0].Currency)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(1200)))

	assert.Equal(t, domain.EntryPayment, entries[1].Type)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(-100000)))
	assert.Equal(t, "IQD", entries[1].Currency)

	assert.Equal(t, domain.EntryInvoice, entries[2].Type)
	assert.True(t, entries[2].Amount.Equal(decimal.NewFromInt(250000)))

	assert.Equal(t, domain.EntryBalance, entries[3].Type)
	assert.Equal(t, "opening balance", entries[3].Description)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.After(entries[i-1].Date))
	}
}

func TestCustomerActivityUnknownCustomer(t *testing.T) {
	svc, _, node := setupService(t)

	_, err := svc.CustomerActivity(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerActivityInvalidID(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.CustomerActivity(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCustomerActivitySurvivesBrokenSource(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issued := base.Add(-24 * time.Hour)
	require.NoError(t, conn.Create(&invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260228-000002",
		Status:     invoicedomain.InvoiceStatusFinalized,
		Currency:   "IQD",
		Total:      decimal.NewFromInt(120000),
		IssuedAt:   &issued,
		CustomerID: &customer.ID,
		CreatedAt:  issued,
	}).Error)
	require.NoError(t, conn.Create(&paymentdomain.Payment{
		ID:         node.Generate(),
		CustomerID: customer.ID,
		AmountIQD:  decimal.NewFromInt(40000),
		Method:     paymentdomain.MethodCash,
		Date:       base.Add(-12 * time.Hour),
		CreatedAt:  base,
	}).Error)

	// Break the balance-history source; the other two must still serve.
	require.NoError(t, conn.Migrator().DropTable(&domain.BalanceHistory{}))

	entries, err := svc.CustomerActivity(context.Background(), customer.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EntryPayment, entries[0].Type)
	assert.Equal(t, domain.EntryInvoice, entries[1].Type)
}

func TestAddAdjustmentMovesDebt(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	record, err := svc.AddAdjustment(context.Background(), domain.AddAdjustmentRequest{
		CustomerID:  customer.ID.String(),
		Amount:      decimal.NewFromInt(50000),
		Currency:    "iqd",
		Description: "carried over from paper ledger",
	})
	require.NoError(t, err)
	assert.Equal(t, "IQD", record.Currency)
	assert.Equal(t, domain.SourceAdjustment, record.SourceType)

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.Equal(decimal.NewFromInt(50000)))
	assert.True(t, stored.DebtUSD.IsZero())

	entries, err := svc.CustomerActivity(context.Background(), customer.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryBalance, entries[0].Type)
}

func TestAddAdjustmentValidation(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node)

	_, err := svc.AddAdjustment(context.Background(), domain.AddAdjustmentRequest{
		CustomerID: customer.ID.String(),
		Amount:     decimal.Zero,
		Currency:   "IQD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.AddAdjustment(context.Background(), domain.AddAdjustmentRequest{
		CustomerID: customer.ID.String(),
		Amount:     decimal.NewFromInt(10),
		Currency:   "EUR",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}
