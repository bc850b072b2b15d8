package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	motorcycledomain "github.com/zagros/backoffice/internal/motorcycle/domain"
)

type createMotorcycleRequest struct {
	SKU       string           `json:"sku"`
	Brand     string           `json:"brand"`
	Model     string           `json:"model"`
	Year      int              `json:"year"`
	Color     string           `json:"color"`
	ChassisNo string           `json:"chassisNo"`
	PriceUSD  *decimal.Decimal `json:"priceUsd"`
	Cost      *decimal.Decimal `json:"cost"`
	Stock     int64            `json:"stock"`
	ImageURL  string           `json:"imageUrl"`
}

type updateMotorcycleRequest struct {
	Brand     *string          `json:"brand"`
	Model     *string          `json:"model"`
	Year      *int             `json:"year"`
	Color     *string          `json:"color"`
	ChassisNo *string          `json:"chassisNo"`
	PriceUSD  *decimal.Decimal `json:"priceUsd"`
	Cost      *decimal.Decimal `json:"cost"`
	ImageURL  *string          `json:"imageUrl"`
}

func (s *Server) CreateMotorcycle(c *gin.Context) {
	var req createMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.motorcycleSvc.Create(c.Request.Context(), motorcycledomain.CreateMotorcycleRequest{
		SKU:       strings.TrimSpace(req.SKU),
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Year:      req.Year,
		Color:     strings.TrimSpace(req.Color),
		ChassisNo: strings.TrimSpace(req.ChassisNo),
		PriceUSD:  orZero(req.PriceUSD),
		Cost:      orZero(req.Cost),
		Stock:     req.Stock,
		ImageURL:  strings.TrimSpace(req.ImageURL),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateMotorcycle(c *gin.Context) {
	var req updateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.motorcycleSvc.Update(c.Request.Context(), motorcycledomain.UpdateMotorcycleRequest{
		ID:        strings.TrimSpace(c.Param("id")),
		Brand:     req.Brand,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		ChassisNo: req.ChassisNo,
		PriceUSD:  req.PriceUSD,
		Cost:      req.Cost,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMotorcycle(c *gin.Context) {
	if err := s.motorcycleSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetMotorcycle(c *gin.Context) {
	resp, err := s.motorcycleSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMotorcycles(c *gin.Context) {
	var query struct {
		listQuery
		Brand string `form:"brand"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.motorcycleSvc.List(c.Request.Context(), motorcycledomain.ListMotorcycleRequest{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
		Brand:      strings.TrimSpace(query.Brand),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) AdjustMotorcycleStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.motorcycleSvc.AdjustStock(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Delta)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
