package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/internal/export"
	"github.com/zagros/backoffice/internal/export/excel"
	motorcycledomain "github.com/zagros/backoffice/internal/motorcycle/domain"
	productdomain "github.com/zagros/backoffice/internal/product/domain"
	pdfprovider "github.com/zagros/backoffice/internal/providers/pdf"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) ExportProductsExcel(c *gin.Context) {
	columns, rows, err := s.productExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveExcel(c, "products", columns, rows)
}

func (s *Server) ExportProductsPDF(c *gin.Context) {
	columns, rows, err := s.productExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.servePDFTable(c, "products", "Products", columns, rows)
}

func (s *Server) ExportCustomersExcel(c *gin.Context) {
	columns, rows, err := s.customerExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveExcel(c, "customers", columns, rows)
}

func (s *Server) ExportCustomersPDF(c *gin.Context) {
	columns, rows, err := s.customerExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.servePDFTable(c, "customers", "Customers", columns, rows)
}

func (s *Server) ExportMotorcyclesExcel(c *gin.Context) {
	columns, rows, err := s.motorcycleExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.serveExcel(c, "motorcycles", columns, rows)
}

func (s *Server) ExportMotorcyclesPDF(c *gin.Context) {
	columns, rows, err := s.motorcycleExportRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.servePDFTable(c, "motorcycles", "Motorcycles", columns, rows)
}

func (s *Server) productExportRows(c *gin.Context) ([]export.Column, []map[string]string, error) {
	columns := export.Normalize(columnsParam(c.Query("columns")), export.ProductColumns)

	var categories []productdomain.Category
	if err := s.db.WithContext(c.Request.Context()).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	categoryNames := make(map[snowflake.ID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	var products []productdomain.Product
	if err := s.db.WithContext(c.Request.Context()).Order("name asc").Find(&products).Error; err != nil {
		return nil, nil, err
	}

	rows := make([]map[string]string, 0, len(products))
	for _, p := range products {
		category := ""
		if p.CategoryID != nil {
			category = categoryNames[*p.CategoryID]
		}
		rows = append(rows, map[string]string{
			"sku":      p.SKU,
			"name":     p.Name,
			"category": category,
			"priceIqd": formatMoney(p.PriceIQD),
			"priceUsd": formatMoney(p.PriceUSD),
			"stock":    strconv.FormatInt(p.Stock, 10),
		})
	}
	return columns, rows, nil
}

func (s *Server) customerExportRows(c *gin.Context) ([]export.Column, []map[string]string, error) {
	columns := export.Normalize(columnsParam(c.Query("columns")), export.CustomerColumns)

	var customers []customerdomain.Customer
	if err := s.db.WithContext(c.Request.Context()).Order("name asc").Find(&customers).Error; err != nil {
		return nil, nil, err
	}

	rows := make([]map[string]string, 0, len(customers))
	for _, cust := range customers {
		rows = append(rows, map[string]string{
			"name":    cust.Name,
			"phone":   cust.Phone,
			"city":    cust.City,
			"address": cust.Address,
			"debtIqd": formatMoney(cust.DebtIQD),
			"debtUsd": formatMoney(cust.DebtUSD),
		})
	}
	return columns, rows, nil
}

func (s *Server) motorcycleExportRows(c *gin.Context) ([]export.Column, []map[string]string, error) {
	columns := export.Normalize(columnsParam(c.Query("columns")), export.MotorcycleColumns)

	var motorcycles []motorcycledomain.Motorcycle
	if err := s.db.WithContext(c.Request.Context()).Order("brand asc, model asc").Find(&motorcycles).Error; err != nil {
		return nil, nil, err
	}

	rows := make([]map[string]string, 0, len(motorcycles))
	for _, m := range motorcycles {
		rows = append(rows, map[string]string{
			"sku":       m.SKU,
			"brand":     m.Brand,
			"model":     m.Model,
			"year":      strconv.Itoa(m.Year),
			"color":     m.Color,
			"chassisNo": m.ChassisNo,
			"priceUsd":  formatMoney(m.PriceUSD),
			"stock":     strconv.FormatInt(m.Stock, 10),
		})
	}
	return columns, rows, nil
}

func (s *Server) serveExcel(c *gin.Context, name string, columns []export.Column, rows []map[string]string) {
	buf, err := excel.Write(columns, rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%d.xlsx", name, time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) servePDFTable(c *gin.Context, name, title string, columns []export.Column, rows []map[string]string) {
	reader, err := s.pdf.GenerateTable(c.Request.Context(), pdfprovider.TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%d.pdf", name, time.Now().Unix())
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
