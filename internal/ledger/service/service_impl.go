package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	"github.com/zagros/backoffice/internal/ledger/domain"
	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	History   domain.HistoryRepository
	Customers customerdomain.Repository
	Invoices  invoicedomain.Repository
	Payments  paymentdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	history   domain.HistoryRepository
	customers customerdomain.Repository
	invoices  invoicedomain.Repository
	payments  paymentdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("ledger.service"),
		genID:     p.GenID,
		history:   p.History,
		customers: p.Customers,
		invoices:  p.Invoices,
		payments:  p.Payments,
	}
}

// CustomerActivity fans out to the three sources concurrently. A source
// that errors contributes nothing; the feed is still served from whatever
// did load, so one broken table never blanks the customer page.
func (s *Service) CustomerActivity(ctx context.Context, rawID string) ([]domain.Entry, error) {
	customerID, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var (
		wg       sync.WaitGroup
		invoices []*invoicedomain.Invoice
		payments []*paymentdomain.Payment
		history  []*domain.BalanceHistory
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, err := s.invoices.ListByCustomer(ctx, s.db, customerID)
		if err != nil {
			s.log.Warn("invoice source failed, serving partial feed",
				zap.Int64("customerId", int64(customerID)),
				zap.Error(err))
			return
		}
		invoices = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.payments.ListByCustomer(ctx, s.db, customerID)
		if err != nil {
			s.log.Warn("payment source failed, serving partial feed",
				zap.Int64("customerId", int64(customerID)),
				zap.Error(err))
			return
		}
		payments = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := s.history.ListByCustomer(ctx, s.db, customerID)
		if err != nil {
			s.log.Warn("balance-history source failed, serving partial feed",
				zap.Int64("customerId", int64(customerID)),
				zap.Error(err))
			return
		}
		history = rows
	}()
	wg.Wait()

	entries := make([]domain.Entry, 0, len(invoices)+len(payments)+len(history))

	for _, invoice := range invoices {
		date := invoice.CreatedAt
		if invoice.IssuedAt != nil {
			date = *invoice.IssuedAt
		}
		description := invoice.Number
		if invoice.Notes != "" {
			description = invoice.Number + " " + invoice.Notes
		}
		entries = append(entries, domain.Entry{
			ID:          invoice.ID,
			Type:        domain.EntryInvoice,
			Date:        date,
			Amount:      invoice.Total,
			Currency:    invoice.Currency,
			Description: description,
		})
	}

	for _, payment := range payments {
		entries = append(entries, domain.Entry{
			ID:          payment.ID,
			Type:        domain.EntryPayment,
			Date:        payment.Date,
			Amount:      payment.Amount().Neg(),
			Currency:    payment.Currency(),
			Description: payment.Description,
		})
	}

	for _, record := range history {
		// Invoice- and payment-sourced rows already came in through their
		// own tables; including them again would double every event.
		if record.SourceType == domain.SourceInvoice || record.SourceType == domain.SourcePayment {
			continue
		}
		entries = append(entries, domain.Entry{
			ID:          record.ID,
			Type:        domain.EntryBalance,
			Date:        record.OccurredAt,
			Amount:      record.Amount,
			Currency:    record.Currency,
			Description: record.Description,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].ID > entries[j].ID
	})

	return entries, nil
}

func (s *Service) AddAdjustment(ctx context.Context, req domain.AddAdjustmentRequest) (domain.BalanceHistory, error) {
	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return domain.BalanceHistory{}, err
	}
	if req.Amount.IsZero() {
		return domain.BalanceHistory{}, domain.ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != "IQD" && currency != "USD" {
		return domain.BalanceHistory{}, domain.ErrInvalidCurrency
	}

	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.BalanceHistory{}, err
	}
	if customer == nil {
		return domain.BalanceHistory{}, domain.ErrNotFound
	}

	now := time.Now().UTC()
	record := domain.BalanceHistory{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		SourceType:  domain.SourceAdjustment,
		Amount:      req.Amount,
		Currency:    currency,
		Description: strings.TrimSpace(req.Description),
		OccurredAt:  now,
		CreatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.customers.AddDebt(ctx, tx, customerID, currency, req.Amount); err != nil {
			return err
		}
		return s.history.Insert(ctx, tx, &record)
	})
	if err != nil {
		return domain.BalanceHistory{}, err
	}
	return record, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
