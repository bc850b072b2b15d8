package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
	"github.com/zagros/backoffice/internal/payment/domain"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Customers customerdomain.Repository
	Invoices  invoicedomain.Repository
	History   ledgerdomain.HistoryRepository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	customers customerdomain.Repository
	invoices  invoicedomain.Repository
	history   ledgerdomain.HistoryRepository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("payment.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		customers: p.Customers,
		invoices:  p.Invoices,
		history:   p.History,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return domain.Payment{}, err
	}
	invoiceID, err := parseOptionalID(req.InvoiceID)
	if err != nil {
		return domain.Payment{}, err
	}

	if req.AmountIQD.IsNegative() || req.AmountUSD.IsNegative() {
		return domain.Payment{}, domain.ErrInvalidAmount
	}
	if req.AmountIQD.IsZero() && req.AmountUSD.IsZero() {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	method := req.Method
	if method == "" {
		method = domain.MethodCash
	}
	if !method.Valid() {
		return domain.Payment{}, domain.ErrInvalidMethod
	}

	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Payment{}, err
	}
	if customer == nil {
		return domain.Payment{}, domain.ErrNotFound
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	payment := domain.Payment{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		InvoiceID:   invoiceID,
		AmountIQD:   req.AmountIQD,
		AmountUSD:   req.AmountUSD,
		Method:      method,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &payment); err != nil {
			return err
		}
		if err := s.customers.AddDebt(ctx, tx, customerID, payment.Currency(), payment.Amount().Neg()); err != nil {
			return err
		}
		if err := s.settleInvoice(ctx, tx, invoiceID, payment.Amount(), now); err != nil {
			return err
		}
		sourceID := payment.ID
		return s.history.Insert(ctx, tx, &ledgerdomain.BalanceHistory{
			ID:          s.genID.Generate(),
			CustomerID:  customerID,
			SourceType:  ledgerdomain.SourcePayment,
			SourceID:    &sourceID,
			Amount:      payment.Amount().Neg(),
			Currency:    payment.Currency(),
			Description: payment.Description,
			OccurredAt:  date,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	payment, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		if err := s.customers.AddDebt(ctx, tx, payment.CustomerID, payment.Currency(), payment.Amount()); err != nil {
			return err
		}
		if err := s.settleInvoice(ctx, tx, payment.InvoiceID, payment.Amount().Neg(), now); err != nil {
			return err
		}
		sourceID := payment.ID
		return s.history.Insert(ctx, tx, &ledgerdomain.BalanceHistory{
			ID:          s.genID.Generate(),
			CustomerID:  payment.CustomerID,
			SourceType:  ledgerdomain.SourceAdjustment,
			SourceID:    &sourceID,
			Amount:      payment.Amount(),
			Currency:    payment.Currency(),
			Description: "payment deleted",
			OccurredAt:  now,
			CreatedAt:   now,
		})
	})
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Payment, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Payment{}, err
	}
	payment, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if payment == nil {
		return domain.Payment{}, domain.ErrNotFound
	}
	return *payment, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentRequest) (domain.ListPaymentResponse, error) {
	customerID, err := parseOptionalID(req.CustomerID)
	if err != nil {
		return domain.ListPaymentResponse{}, err
	}
	invoiceID, err := parseOptionalID(req.InvoiceID)
	if err != nil {
		return domain.ListPaymentResponse{}, err
	}

	filter := domain.ListPaymentFilter{
		CustomerID: customerID,
		InvoiceID:  invoiceID,
		Method:     req.Method,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListPaymentResponse{}, err
	}

	payments := make([]domain.Payment, 0, len(items))
	for _, item := range items {
		payments = append(payments, *item)
	}

	return domain.ListPaymentResponse{
		Payments:   payments,
		Pagination: pagination.BuildPageInfo(page, total),
	}, nil
}

// settleInvoice applies a signed paid-amount delta to a linked invoice and
// rolls its status forward or back.
func (s *Service) settleInvoice(ctx context.Context, tx *gorm.DB, invoiceID *snowflake.ID, delta decimal.Decimal, now time.Time) error {
	if invoiceID == nil {
		return nil
	}
	invoice, err := s.invoices.FindByID(ctx, tx, *invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}

	// Only issued invoices settle. A draft never moved debt onto the
	// customer, and a cancelled invoice already had its debt backed out.
	switch invoice.Status {
	case invoicedomain.InvoiceStatusDraft, invoicedomain.InvoiceStatusCancelled:
		if delta.IsPositive() {
			return domain.ErrInvoiceNotOpen
		}
		return nil
	}

	invoice.AmountPaid = invoice.AmountPaid.Add(delta)
	if invoice.AmountPaid.IsNegative() {
		invoice.AmountPaid = decimal.Zero
	}
	invoice.AmountDue = invoice.Total.Sub(invoice.AmountPaid)

	switch {
	case invoice.AmountDue.LessThanOrEqual(decimal.Zero):
		invoice.Status = invoicedomain.InvoiceStatusPaid
		invoice.PaidAt = &now
	case invoice.AmountPaid.IsZero():
		invoice.Status = invoicedomain.InvoiceStatusFinalized
		invoice.PaidAt = nil
	default:
		invoice.Status = invoicedomain.InvoiceStatusPartiallyPaid
		invoice.PaidAt = nil
	}
	invoice.UpdatedAt = now

	return s.invoices.Update(ctx, tx, invoice)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseOptionalID(value string) (*snowflake.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(trimmed)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}
	return &id, nil
}
