package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/internal/invoice/classify"
	"github.com/zagros/backoffice/internal/invoice/domain"
	"github.com/zagros/backoffice/internal/invoice/format"
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
	productdomain "github.com/zagros/backoffice/internal/product/domain"
	saledomain "github.com/zagros/backoffice/internal/sale/domain"
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
	Sales     saledomain.Repository
	Products  productdomain.Repository
	History   ledgerdomain.HistoryRepository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	customers customerdomain.Repository
	sales     saledomain.Repository
	products  productdomain.Repository
	history   ledgerdomain.HistoryRepository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		customers: p.Customers,
		sales:     p.Sales,
		products:  p.Products,
		history:   p.History,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	if len(req.Items) == 0 {
		return domain.Invoice{}, domain.ErrInvalidItems
	}

	customerID, err := parseOptionalID(req.CustomerID)
	if err != nil {
		return domain.Invoice{}, err
	}
	saleID, err := parseOptionalID(req.SaleID)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice := domain.Invoice{
		ID:         s.genID.Generate(),
		Status:     domain.InvoiceStatusDraft,
		CustomerID: customerID,
		SaleID:     saleID,
		Notes:      strings.TrimSpace(req.Notes),
		Discount:   req.Discount,
		DueAt:      req.DueAt,
	}

	items, err := s.buildItems(invoice.ID, req.Items)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Items = items
	s.applyTotals(&invoice)

	saleType, err := s.resolveSaleType(ctx, saleID)
	if err != nil {
		return domain.Invoice{}, err
	}
	s.applyClassification(ctx, &invoice, saleType)

	now := time.Now().UTC()
	seq, err := s.repo.CountByNumberPrefix(ctx, s.db, numberPrefix(now))
	if err != nil {
		return domain.Invoice{}, err
	}
	number, err := format.Number(format.DefaultNumberTemplate, now, seq+1)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Number = number
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (domain.Invoice, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return domain.Invoice{}, domain.ErrNotDraft
	}

	if req.Notes != nil {
		invoice.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.DueAt != nil {
		invoice.DueAt = req.DueAt
	}

	replaceItems := false
	if req.Items != nil {
		if len(*req.Items) == 0 {
			return domain.Invoice{}, domain.ErrInvalidItems
		}
		items, err := s.buildItems(invoice.ID, *req.Items)
		if err != nil {
			return domain.Invoice{}, err
		}
		invoice.Items = items
		replaceItems = true
	}

	s.applyTotals(invoice)

	saleType, err := s.resolveSaleType(ctx, invoice.SaleID)
	if err != nil {
		return domain.Invoice{}, err
	}
	s.applyClassification(ctx, invoice, saleType)
	invoice.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceItems {
			if err := s.repo.ReplaceItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
				return err
			}
		}
		return s.repo.Update(ctx, tx, invoice)
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return *invoice, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return domain.ErrNotDraft
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	applyOverdue(invoice, time.Now().UTC())
	return *invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	customerID, err := parseOptionalID(req.CustomerID)
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	filter := domain.ListInvoiceFilter{
		Search:     strings.TrimSpace(req.Search),
		Status:     req.Status,
		Kind:       req.Kind,
		CustomerID: customerID,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	now := time.Now().UTC()
	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		applyOverdue(item, now)
		invoices = append(invoices, *item)
	}

	return domain.ListInvoiceResponse{
		Invoices:   invoices,
		Pagination: pagination.BuildPageInfo(page, total),
	}, nil
}

func (s *Service) Finalize(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	if invoice.Status != domain.InvoiceStatusDraft {
		return domain.Invoice{}, domain.ErrNotDraft
	}

	now := time.Now().UTC()
	invoice.Status = domain.InvoiceStatusFinalized
	invoice.IssuedAt = &now
	invoice.AmountDue = invoice.Total
	invoice.UpdatedAt = now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, invoice); err != nil {
			return err
		}
		if invoice.CustomerID == nil {
			return nil
		}
		if err := s.customers.AddDebt(ctx, tx, *invoice.CustomerID, invoice.Currency, invoice.Total); err != nil {
			return err
		}
		sourceID := invoice.ID
		return s.history.Insert(ctx, tx, &ledgerdomain.BalanceHistory{
			ID:          s.genID.Generate(),
			CustomerID:  *invoice.CustomerID,
			SourceType:  ledgerdomain.SourceInvoice,
			SourceID:    &sourceID,
			Amount:      invoice.Total,
			Currency:    invoice.Currency,
			Description: invoice.Number,
			OccurredAt:  now,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return *invoice, nil
}

func (s *Service) Cancel(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	switch invoice.Status {
	case domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled:
		return domain.Invoice{}, domain.ErrAlreadyClosed
	}

	wasIssued := invoice.Status != domain.InvoiceStatusDraft
	now := time.Now().UTC()
	invoice.Status = domain.InvoiceStatusCancelled
	invoice.AmountDue = decimal.Zero
	invoice.UpdatedAt = now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, invoice); err != nil {
			return err
		}
		if !wasIssued || invoice.CustomerID == nil {
			return nil
		}
		// Back out the debt that Finalize put on the customer.
		if err := s.customers.AddDebt(ctx, tx, *invoice.CustomerID, invoice.Currency, invoice.Total.Neg()); err != nil {
			return err
		}
		sourceID := invoice.ID
		return s.history.Insert(ctx, tx, &ledgerdomain.BalanceHistory{
			ID:          s.genID.Generate(),
			CustomerID:  *invoice.CustomerID,
			SourceType:  ledgerdomain.SourceAdjustment,
			SourceID:    &sourceID,
			Amount:      invoice.Total.Neg(),
			Currency:    invoice.Currency,
			Description: "cancelled " + invoice.Number,
			OccurredAt:  now,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return *invoice, nil
}

func (s *Service) Reclassify(ctx context.Context) (int64, error) {
	invoices, err := s.repo.ListUnclassified(ctx, s.db)
	if err != nil {
		return 0, err
	}

	var updated int64
	for _, invoice := range invoices {
		saleType, err := s.resolveSaleType(ctx, invoice.SaleID)
		if err != nil {
			s.log.Warn("skip invoice with unresolvable sale",
				zap.Int64("invoiceId", int64(invoice.ID)),
				zap.Error(err))
			continue
		}
		s.applyClassification(ctx, invoice, saleType)
		invoice.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, s.db, invoice); err != nil {
			return updated, err
		}
		updated++
	}

	s.log.Info("reclassified legacy invoices", zap.Int64("updated", updated))
	return updated, nil
}

func (s *Service) buildItems(invoiceID snowflake.ID, reqs []domain.CreateInvoiceItemRequest) ([]domain.InvoiceItem, error) {
	items := make([]domain.InvoiceItem, 0, len(reqs))
	for _, req := range reqs {
		productID, err := parseOptionalID(req.ProductID)
		if err != nil {
			return nil, domain.ErrInvalidItems
		}
		motorcycleID, err := parseOptionalID(req.MotorcycleID)
		if err != nil {
			return nil, domain.ErrInvalidItems
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 || req.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidItems
		}

		gross := req.UnitPrice.Mul(decimal.NewFromInt(quantity))
		net := gross.Sub(req.Discount)
		tax := net.Mul(req.TaxRate)

		items = append(items, domain.InvoiceItem{
			ID:           s.genID.Generate(),
			InvoiceID:    invoiceID,
			ProductID:    productID,
			MotorcycleID: motorcycleID,
			Description:  strings.TrimSpace(req.Description),
			Quantity:     quantity,
			UnitPrice:    req.UnitPrice,
			Discount:     req.Discount,
			TaxRate:      req.TaxRate,
			LineTotal:    net.Add(tax),
			Notes:        strings.TrimSpace(req.Notes),
			CreatedAt:    time.Now().UTC(),
		})
	}
	return items, nil
}

// applyOverdue derives the overdue status at read time. The stored status
// stays finalized or partially_paid so settlement and state transitions
// never have to reason about due dates.
func applyOverdue(invoice *domain.Invoice, now time.Time) {
	if invoice.DueAt == nil || now.Before(*invoice.DueAt) {
		return
	}
	switch invoice.Status {
	case domain.InvoiceStatusFinalized, domain.InvoiceStatusPartiallyPaid:
		invoice.Status = domain.InvoiceStatusOverdue
	}
}

func (s *Service) applyTotals(invoice *domain.Invoice) {
	subtotal := decimal.Zero
	tax := decimal.Zero
	itemDiscount := decimal.Zero
	for _, item := range invoice.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		itemDiscount = itemDiscount.Add(item.Discount)
		net := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)).Sub(item.Discount)
		tax = tax.Add(net.Mul(item.TaxRate))
	}
	invoice.Subtotal = subtotal
	invoice.Tax = tax
	invoice.Total = subtotal.Sub(itemDiscount).Sub(invoice.Discount).Add(tax)
	if invoice.Total.IsNegative() {
		invoice.Total = decimal.Zero
	}
}

// applyClassification stores the derived kind and currency on the invoice.
// Lines referencing a catalog motorcycle force the motorcycle variants even
// when the notes carry no marker.
func (s *Service) applyClassification(ctx context.Context, invoice *domain.Invoice, saleType string) {
	input := classify.Input{
		Notes:    invoice.Notes,
		SaleType: saleType,
	}
	hasMotorcycleRef := false
	for _, item := range invoice.Items {
		name := item.Description
		if item.ProductID != nil && name == "" {
			if product, err := s.products.FindByID(ctx, s.db, *item.ProductID); err == nil && product != nil {
				name = product.Name
			}
		}
		if item.MotorcycleID != nil {
			hasMotorcycleRef = true
		}
		input.Items = append(input.Items, classify.Item{
			HasProductRef: item.ProductID != nil,
			ProductName:   name,
			Notes:         item.Notes,
		})
	}

	result := classify.Classify(input)
	if hasMotorcycleRef && result.Kind != classify.KindPayment && !result.Motorcycle {
		result.Motorcycle = true
		result.Currency = classify.CurrencyUSD
		if result.Kind == classify.KindWholesaleProduct {
			result.Kind = classify.KindWholesaleMotorcycle
		} else {
			result.Kind = classify.KindRetailMotorcycle
		}
	}

	invoice.Kind = result.Kind
	invoice.Currency = result.Currency
}

func (s *Service) resolveSaleType(ctx context.Context, saleID *snowflake.ID) (string, error) {
	if saleID == nil {
		return "", nil
	}
	sale, err := s.sales.FindByID(ctx, s.db, *saleID)
	if err != nil {
		return "", err
	}
	if sale == nil {
		return "", domain.ErrNotFound
	}
	return string(sale.Type), nil
}

func numberPrefix(t time.Time) string {
	return "INV-" + t.Format("20060102") + "-"
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
