package service

import (
	"context"
	"fmt"
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
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
	ledgerrepo "github.com/zagros/backoffice/internal/ledger/repository"
	"github.com/zagros/backoffice/internal/payment/domain"
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
		&domain.Payment{},
		&ledgerdomain.BalanceHistory{},
	))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	svc := New(Params{
		DB:        conn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      paymentrepo.Provide(),
		Customers: customerrepo.Provide(),
		Invoices:  invoicerepo.Provide(),
		History:   ledgerrepo.Provide(),
	})
	return svc.(*Service), conn, node
}

func seedCustomer(t *testing.T, conn *gorm.DB, node *snowflake.Node, debtIQD int64) customerdomain.Customer {
	t.Helper()
	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Name:      "Rebin Hassan",
		DebtIQD:   decimal.NewFromInt(debtIQD),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&customer).Error)
	return customer
}

func TestCreatePaymentReducesDebt(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 150000)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountIQD:  decimal.NewFromInt(100000),
		Method:     domain.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "IQD", payment.Currency())

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.Equal(decimal.NewFromInt(50000)))

	var history ledgerdomain.BalanceHistory
	require.NoError(t, conn.First(&history, "customer_id = ?", customer.ID).Error)
	assert.Equal(t, ledgerdomain.SourcePayment, history.SourceType)
	assert.True(t, history.Amount.Equal(decimal.NewFromInt(-100000)))
}

func TestCreateUSDPayment(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 0)
	require.NoError(t, conn.Model(&customer).Update("debt_usd", decimal.NewFromInt(1200)).Error)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountUSD:  decimal.NewFromInt(500),
		Method:     domain.MethodTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", payment.Currency())
	assert.True(t, payment.Amount().Equal(decimal.NewFromInt(500)))

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtUSD.Equal(decimal.NewFromInt(700)))
}

func TestCreatePaymentSettlesInvoice(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 0)

	invoice := invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260301-000001",
		Status:     invoicedomain.InvoiceStatusFinalized,
		Currency:   "IQD",
		Total:      decimal.NewFromInt(80000),
		AmountDue:  decimal.NewFromInt(80000),
		CustomerID: &customer.ID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&invoice).Error)

	_, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		InvoiceID:  invoice.ID.String(),
		AmountIQD:  decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	var partly invoicedomain.Invoice
	require.NoError(t, conn.First(&partly, "id = ?", invoice.ID).Error)
	assert.Equal(t, invoicedomain.InvoiceStatusPartiallyPaid, partly.Status)
	assert.True(t, partly.AmountDue.Equal(decimal.NewFromInt(50000)))

	_, err = svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		InvoiceID:  invoice.ID.String(),
		AmountIQD:  decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	var paid invoicedomain.Invoice
	require.NoError(t, conn.First(&paid, "id = ?", invoice.ID).Error)
	assert.Equal(t, invoicedomain.InvoiceStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)
	assert.True(t, paid.AmountDue.IsZero())
}

func TestDeletePaymentReversesEverything(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 100000)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountIQD:  decimal.NewFromInt(40000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), payment.ID.String()))

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.Equal(decimal.NewFromInt(100000)))

	_, err = svc.GetByID(context.Background(), payment.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 0)

	_, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountIQD:  decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountIQD:  decimal.NewFromInt(10),
		Method:     "barter",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMethod)

	_, err = svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: node.Generate().String(),
		AmountIQD:  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePaymentRejectsClosedInvoices(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 0)

	for i, status := range []invoicedomain.InvoiceStatus{
		invoicedomain.InvoiceStatusDraft,
		invoicedomain.InvoiceStatusCancelled,
	} {
		invoice := invoicedomain.Invoice{
			ID:         node.Generate(),
			Number:     fmt.Sprintf("INV-20260301-00000%d", i+1),
			Status:     status,
			Currency:   "IQD",
			Total:      decimal.NewFromInt(250000),
			CustomerID: &customer.ID,
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}
		require.NoError(t, conn.Create(&invoice).Error)

		_, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
			CustomerID: customer.ID.String(),
			InvoiceID:  invoice.ID.String(),
			AmountIQD:  decimal.NewFromInt(250000),
		})
		assert.ErrorIs(t, err, domain.ErrInvoiceNotOpen, string(status))

		var stored invoicedomain.Invoice
		require.NoError(t, conn.First(&stored, "id = ?", invoice.ID).Error)
		assert.Equal(t, status, stored.Status)
		assert.True(t, stored.AmountPaid.IsZero())
	}

	// The whole transaction rolls back: no receipt, no debt movement.
	var count int64
	require.NoError(t, conn.Model(&domain.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtIQD.IsZero())
}

func TestDeletePaymentLeavesDraftInvoiceAlone(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 0)

	// Legacy row: a receipt pointing at an invoice that is still a draft.
	draft := invoicedomain.Invoice{
		ID:         node.Generate(),
		Number:     "INV-20260302-000001",
		Status:     invoicedomain.InvoiceStatusDraft,
		Currency:   "IQD",
		Total:      decimal.NewFromInt(90000),
		CustomerID: &customer.ID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&draft).Error)

	payment := domain.Payment{
		ID:         node.Generate(),
		CustomerID: customer.ID,
		InvoiceID:  &draft.ID,
		AmountIQD:  decimal.NewFromInt(90000),
		Method:     domain.MethodCash,
		Date:       time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, conn.Create(&payment).Error)

	require.NoError(t, svc.Delete(context.Background(), payment.ID.String()))

	var stored invoicedomain.Invoice
	require.NoError(t, conn.First(&stored, "id = ?", draft.ID).Error)
	assert.Equal(t, invoicedomain.InvoiceStatusDraft, stored.Status)
	assert.Nil(t, stored.IssuedAt)
}

func TestCreatePaymentWithBothAmountsSettlesUSD(t *testing.T) {
	svc, conn, node := setupService(t)
	customer := seedCustomer(t, conn, node, 200000)
	require.NoError(t, conn.Model(&customerdomain.Customer{}).
		Where("id = ?", customer.ID).
		Update("debt_usd", decimal.NewFromInt(1500)).Error)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentRequest{
		CustomerID: customer.ID.String(),
		AmountIQD:  decimal.NewFromInt(50000),
		AmountUSD:  decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", payment.Currency())
	assert.True(t, payment.Amount().Equal(decimal.NewFromInt(400)))

	var stored customerdomain.Customer
	require.NoError(t, conn.First(&stored, "id = ?", customer.ID).Error)
	assert.True(t, stored.DebtUSD.Equal(decimal.NewFromInt(1100)))
	assert.True(t, stored.DebtIQD.Equal(decimal.NewFromInt(200000)))

	var history ledgerdomain.BalanceHistory
	require.NoError(t, conn.First(&history, "customer_id = ?", customer.ID).Error)
	assert.Equal(t, "USD", history.Currency)
	assert.True(t, history.Amount.Equal(decimal.NewFromInt(-400)))
}
