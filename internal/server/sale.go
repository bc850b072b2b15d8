package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	saledomain "github.com/zagros/backoffice/internal/sale/domain"
)

type createSaleRequest struct {
	Type       string `json:"type"`
	CustomerID string `json:"customerId"`
	Notes      string `json:"notes"`
}

type updateSaleRequest struct {
	Type  *string `json:"type"`
	Notes *string `json:"notes"`
}

func (s *Server) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.Create(c.Request.Context(), saledomain.CreateSaleRequest{
		Type:       saledomain.SaleType(strings.ToUpper(strings.TrimSpace(req.Type))),
		CustomerID: strings.TrimSpace(req.CustomerID),
		Notes:      strings.TrimSpace(req.Notes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateSale(c *gin.Context) {
	var req updateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var saleType *saledomain.SaleType
	if req.Type != nil {
		st := saledomain.SaleType(strings.ToUpper(strings.TrimSpace(*req.Type)))
		saleType = &st
	}

	resp, err := s.saleSvc.Update(c.Request.Context(), saledomain.UpdateSaleRequest{
		ID:    strings.TrimSpace(c.Param("id")),
		Type:  saleType,
		Notes: req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSale(c *gin.Context) {
	if err := s.saleSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetSale(c *gin.Context) {
	resp, err := s.saleSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSales(c *gin.Context) {
	var query struct {
		listQuery
		Type       string `form:"type"`
		CustomerID string `form:"customerId"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListSaleRequest{
		Pagination: query.Pagination,
		Type:       strings.ToUpper(strings.TrimSpace(query.Type)),
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
