package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
)

type createCustomerRequest struct {
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	NotifyThreshold *decimal.Decimal `json:"notifyThreshold"`
	NotifyType      string           `json:"notifyType"`
	Attachments     []string         `json:"attachments"`
}

type updateCustomerRequest struct {
	Name            *string          `json:"name"`
	Phone           *string          `json:"phone"`
	Email           *string          `json:"email"`
	Address         *string          `json:"address"`
	City            *string          `json:"city"`
	NotifyThreshold *decimal.Decimal `json:"notifyThreshold"`
	NotifyType      *string          `json:"notifyType"`
	Attachments     *[]string        `json:"attachments"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	threshold := decimal.Zero
	if req.NotifyThreshold != nil {
		threshold = *req.NotifyThreshold
	}
	notifyType := customerdomain.NotifyNone
	if trimmed := strings.TrimSpace(req.NotifyType); trimmed != "" {
		notifyType = customerdomain.NotifyType(trimmed)
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Address:         strings.TrimSpace(req.Address),
		City:            strings.TrimSpace(req.City),
		NotifyThreshold: threshold,
		NotifyType:      notifyType,
		Attachments:     req.Attachments,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var notifyType *customerdomain.NotifyType
	if req.NotifyType != nil {
		nt := customerdomain.NotifyType(strings.TrimSpace(*req.NotifyType))
		notifyType = &nt
	}

	resp, err := s.customerSvc.Update(c.Request.Context(), customerdomain.UpdateCustomerRequest{
		ID:              strings.TrimSpace(c.Param("id")),
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		City:            req.City,
		NotifyThreshold: req.NotifyThreshold,
		NotifyType:      notifyType,
		Attachments:     req.Attachments,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customerSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetCustomer(c *gin.Context) {
	resp, err := s.customerSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		listQuery
		City string `form:"city"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
		City:       strings.TrimSpace(query.City),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CustomerActivity serves the reconstructed debt feed for one customer.
func (s *Server) CustomerActivity(c *gin.Context) {
	entries, err := s.ledgerSvc.CustomerActivity(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

type addAdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

func (s *Server) AddAdjustment(c *gin.Context) {
	var req addAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.AddAdjustment(c.Request.Context(), ledgerdomain.AddAdjustmentRequest{
		CustomerID:  strings.TrimSpace(c.Param("id")),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
