package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	productdomain "github.com/zagros/backoffice/internal/product/domain"
)

type createProductRequest struct {
	SKU        string           `json:"sku"`
	Name       string           `json:"name"`
	CategoryID string           `json:"categoryId"`
	PriceIQD   *decimal.Decimal `json:"priceIqd"`
	PriceUSD   *decimal.Decimal `json:"priceUsd"`
	Cost       *decimal.Decimal `json:"cost"`
	Stock      int64            `json:"stock"`
	ImageURL   string           `json:"imageUrl"`
}

type updateProductRequest struct {
	Name       *string          `json:"name"`
	CategoryID *string          `json:"categoryId"`
	PriceIQD   *decimal.Decimal `json:"priceIqd"`
	PriceUSD   *decimal.Decimal `json:"priceUsd"`
	Cost       *decimal.Decimal `json:"cost"`
	ImageURL   *string          `json:"imageUrl"`
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		SKU:        strings.TrimSpace(req.SKU),
		Name:       strings.TrimSpace(req.Name),
		CategoryID: strings.TrimSpace(req.CategoryID),
		PriceIQD:   orZero(req.PriceIQD),
		PriceUSD:   orZero(req.PriceUSD),
		Cost:       orZero(req.Cost),
		Stock:      req.Stock,
		ImageURL:   strings.TrimSpace(req.ImageURL),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateProductRequest{
		ID:         strings.TrimSpace(c.Param("id")),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		PriceIQD:   req.PriceIQD,
		PriceUSD:   req.PriceUSD,
		Cost:       req.Cost,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetProduct(c *gin.Context) {
	resp, err := s.productSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		listQuery
		CategoryID string `form:"categoryId"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListProductRequest{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
		CategoryID: strings.TrimSpace(query.CategoryID),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type adjustStockRequest struct {
	Delta int64 `json:"delta"`
}

func (s *Server) AdjustProductStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.AdjustStock(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Delta)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCategories(c *gin.Context) {
	resp, err := s.productSvc.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.CreateCategory(c.Request.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
