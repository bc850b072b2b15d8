package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zagros/backoffice/internal/config"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	"github.com/zagros/backoffice/internal/invoice/render"
	pdfprovider "github.com/zagros/backoffice/internal/providers/pdf"
)

type invoiceItemRequest struct {
	ProductID    string           `json:"productId"`
	MotorcycleID string           `json:"motorcycleId"`
	Description  string           `json:"description"`
	Quantity     int64            `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
	Discount     *decimal.Decimal `json:"discount"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
	Notes        string           `json:"notes"`
}

type createInvoiceRequest struct {
	CustomerID string               `json:"customerId"`
	SaleID     string               `json:"saleId"`
	Notes      string               `json:"notes"`
	Discount   *decimal.Decimal     `json:"discount"`
	DueAt      string               `json:"dueAt"`
	Items      []invoiceItemRequest `json:"items"`
}

type updateInvoiceRequest struct {
	Notes    *string               `json:"notes"`
	Discount *decimal.Decimal      `json:"discount"`
	DueAt    string                `json:"dueAt"`
	Items    *[]invoiceItemRequest `json:"items"`
}

func toItemRequests(items []invoiceItemRequest) []invoicedomain.CreateInvoiceItemRequest {
	out := make([]invoicedomain.CreateInvoiceItemRequest, 0, len(items))
	for _, item := range items {
		out = append(out, invoicedomain.CreateInvoiceItemRequest{
			ProductID:    strings.TrimSpace(item.ProductID),
			MotorcycleID: strings.TrimSpace(item.MotorcycleID),
			Description:  strings.TrimSpace(item.Description),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Discount:     orZero(item.Discount),
			TaxRate:      orZero(item.TaxRate),
			Notes:        strings.TrimSpace(item.Notes),
		})
	}
	return out
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dueAt, err := parseOptionalTime(req.DueAt, true)
	if err != nil {
		AbortWithError(c, newValidationError("dueAt", "invalid_due_date", "invalid due date"))
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		CustomerID: strings.TrimSpace(req.CustomerID),
		SaleID:     strings.TrimSpace(req.SaleID),
		Notes:      strings.TrimSpace(req.Notes),
		Discount:   orZero(req.Discount),
		DueAt:      dueAt,
		Items:      toItemRequests(req.Items),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dueAt, err := parseOptionalTime(req.DueAt, true)
	if err != nil {
		AbortWithError(c, newValidationError("dueAt", "invalid_due_date", "invalid due date"))
		return
	}

	var items *[]invoicedomain.CreateInvoiceItemRequest
	if req.Items != nil {
		converted := toItemRequests(*req.Items)
		items = &converted
	}

	resp, err := s.invoiceSvc.Update(c.Request.Context(), invoicedomain.UpdateInvoiceRequest{
		ID:       strings.TrimSpace(c.Param("id")),
		Notes:    req.Notes,
		Discount: req.Discount,
		DueAt:    dueAt,
		Items:    items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		listQuery
		Status     string `form:"status"`
		Kind       string `form:"kind"`
		CustomerID string `form:"customerId"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListInvoiceRequest{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
		Status:     strings.TrimSpace(query.Status),
		Kind:       strings.TrimSpace(query.Kind),
		CustomerID: strings.TrimSpace(query.CustomerID),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) FinalizeInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.Finalize(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.Cancel(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ReclassifyInvoices(c *gin.Context) {
	updated, err := s.invoiceSvc.Reclassify(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"updated": updated}})
}

// PrintInvoice renders the invoice as a self-printing HTML page. The locale
// picks labels, text direction and the font stack.
func (s *Server) PrintInvoice(c *gin.Context) {
	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	locale := strings.TrimSpace(c.Query("locale"))
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	locale = config.NormalizeLocale(locale)

	doc := render.Document{
		CompanyName:  s.exportCfg.CompanyName,
		CompanyPhone: s.exportCfg.CompanyPhone,
		Number:       inv.Number,
		Status:       string(inv.Status),
		IssueDate:    formatDate(inv.IssuedAt),
		DueDate:      formatDate(inv.DueAt),
		Currency:     inv.Currency,
		Subtotal:     formatMoney(inv.Subtotal),
		Discount:     formatMoney(inv.Discount),
		Tax:          formatMoney(inv.Tax),
		Total:        formatMoney(inv.Total),
		AmountDue:    formatMoney(inv.AmountDue),
		Notes:        inv.Notes,
	}
	for _, item := range inv.Items {
		doc.Lines = append(doc.Lines, render.Line{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   formatMoney(item.UnitPrice),
			Amount:      formatMoney(item.LineTotal),
		})
	}
	s.fillCustomer(c, inv, func(name, phone, address string) {
		doc.CustomerName = name
		doc.CustomerPhone = phone
		doc.CustomerAddress = address
	})

	html, err := render.HTML(doc, locale)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) InvoicePDF(c *gin.Context) {
	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := pdfprovider.InvoiceData{
		Number:    inv.Number,
		Kind:      string(inv.Kind),
		Status:    string(inv.Status),
		IssueDate: formatDate(inv.IssuedAt),
		DueDate:   formatDate(inv.DueAt),
		Currency:  inv.Currency,
		Subtotal:  formatMoney(inv.Subtotal),
		Discount:  formatMoney(inv.Discount),
		Tax:       formatMoney(inv.Tax),
		Total:     formatMoney(inv.Total),
		AmountDue: formatMoney(inv.AmountDue),
	}
	for _, item := range inv.Items {
		data.Items = append(data.Items, pdfprovider.InvoiceItemData{
			Description: item.Description,
			Qty:         item.Quantity,
			UnitPrice:   formatMoney(item.UnitPrice),
			Amount:      formatMoney(item.LineTotal),
		})
	}
	s.fillCustomer(c, inv, func(name, phone, address string) {
		data.CustomerName = name
		data.CustomerPhone = phone
		data.CustomerAddress = address
	})

	reader, err := s.pdf.GenerateInvoice(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice-%s-%d.pdf", inv.Number, time.Now().Unix())
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

// fillCustomer resolves the billed customer, tolerating invoices without
// one (walk-in sales).
func (s *Server) fillCustomer(c *gin.Context, inv invoicedomain.Invoice, set func(name, phone, address string)) {
	if inv.CustomerID == nil {
		return
	}
	cust, err := s.customerSvc.GetByID(c.Request.Context(), inv.CustomerID.String())
	if err != nil {
		s.log.Warn("invoice customer lookup failed", zap.String("number", inv.Number))
		return
	}
	set(cust.Name, cust.Phone, cust.Address)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateOnlyLayout)
}

// formatMoney renders an amount with thousand separators, trimming
// fractional digits when the value is whole.
func formatMoney(d decimal.Decimal) string {
	s := d.Truncate(2).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(ch)
	}
	if hasFrac {
		out.WriteByte('.')
		out.WriteString(fracPart)
	}
	return out.String()
}
