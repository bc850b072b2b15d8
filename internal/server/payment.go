package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
)

type createPaymentRequest struct {
	CustomerID  string           `json:"customerId"`
	InvoiceID   string           `json:"invoiceId"`
	AmountIQD   *decimal.Decimal `json:"amountIqd"`
	AmountUSD   *decimal.Decimal `json:"amountUsd"`
	Method      string           `json:"method"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	date, err := parseOptionalTime(req.Date, false)
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "invalid date"))
		return
	}

	resp, err := s.paymentSvc.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		CustomerID:  strings.TrimSpace(req.CustomerID),
		InvoiceID:   strings.TrimSpace(req.InvoiceID),
		AmountIQD:   orZero(req.AmountIQD),
		AmountUSD:   orZero(req.AmountUSD),
		Method:      paymentdomain.PaymentMethod(strings.ToLower(strings.TrimSpace(req.Method))),
		Description: strings.TrimSpace(req.Description),
		Date:        date,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) DeletePayment(c *gin.Context) {
	if err := s.paymentSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetPayment(c *gin.Context) {
	resp, err := s.paymentSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	var query struct {
		listQuery
		CustomerID string `form:"customerId"`
		InvoiceID  string `form:"invoiceId"`
		Method     string `form:"method"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.List(c.Request.Context(), paymentdomain.ListPaymentRequest{
		Pagination: query.Pagination,
		CustomerID: strings.TrimSpace(query.CustomerID),
		InvoiceID:  strings.TrimSpace(query.InvoiceID),
		Method:     strings.ToLower(strings.TrimSpace(query.Method)),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
