package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zagros/backoffice/internal/auth"
	authdomain "github.com/zagros/backoffice/internal/auth/domain"
	"github.com/zagros/backoffice/internal/authorization"
	"github.com/zagros/backoffice/internal/config"
	"github.com/zagros/backoffice/internal/customer"
	customerdomain "github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/internal/dashboard"
	dashboarddomain "github.com/zagros/backoffice/internal/dashboard/domain"
	"github.com/zagros/backoffice/internal/employee"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	"github.com/zagros/backoffice/internal/invoice"
	invoicedomain "github.com/zagros/backoffice/internal/invoice/domain"
	"github.com/zagros/backoffice/internal/ledger"
	ledgerdomain "github.com/zagros/backoffice/internal/ledger/domain"
	"github.com/zagros/backoffice/internal/motorcycle"
	motorcycledomain "github.com/zagros/backoffice/internal/motorcycle/domain"
	"github.com/zagros/backoffice/internal/payment"
	paymentdomain "github.com/zagros/backoffice/internal/payment/domain"
	"github.com/zagros/backoffice/internal/product"
	productdomain "github.com/zagros/backoffice/internal/product/domain"
	pdfprovider "github.com/zagros/backoffice/internal/providers/pdf"
	"github.com/zagros/backoffice/internal/ratelimit"
	"github.com/zagros/backoffice/internal/sale"
	saledomain "github.com/zagros/backoffice/internal/sale/domain"
)

// Module wires the HTTP surface: the gin engine, every domain service and
// the route table.
var Module = fx.Module("http.server",
	auth.Module,
	authorization.Module,
	customer.Module,
	product.Module,
	motorcycle.Module,
	sale.Module,
	invoice.Module,
	payment.Module,
	ledger.Module,
	employee.Module,
	dashboard.Module,
	pdfprovider.Module,
	ratelimit.Module,

	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

type Server struct {
	cfg config.Config
	log *zap.Logger
	db  *gorm.DB

	authSvc       authdomain.Service
	authz         authorization.Service
	customerSvc   customerdomain.Service
	productSvc    productdomain.Service
	motorcycleSvc motorcycledomain.Service
	saleSvc       saledomain.Service
	invoiceSvc    invoicedomain.Service
	paymentSvc    paymentdomain.Service
	ledgerSvc     ledgerdomain.Service
	employeeSvc   employeedomain.Service
	dashboardSvc  dashboarddomain.Service
	pdf           pdfprovider.Provider
	exportCfg     config.ExportSettings
}

type ServerParams struct {
	fx.In

	Config         config.Config
	Log            *zap.Logger
	DB             *gorm.DB
	AuthSvc        authdomain.Service
	Authz          authorization.Service
	CustomerSvc    customerdomain.Service
	ProductSvc     productdomain.Service
	MotorcycleSvc  motorcycledomain.Service
	SaleSvc        saledomain.Service
	InvoiceSvc     invoicedomain.Service
	PaymentSvc     paymentdomain.Service
	LedgerSvc      ledgerdomain.Service
	EmployeeSvc    employeedomain.Service
	DashboardSvc   dashboarddomain.Service
	PDF            pdfprovider.Provider
	ExportSettings config.ExportSettings
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:           p.Config,
		log:           p.Log.Named("http.server"),
		db:            p.DB,
		authSvc:       p.AuthSvc,
		authz:         p.Authz,
		customerSvc:   p.CustomerSvc,
		productSvc:    p.ProductSvc,
		motorcycleSvc: p.MotorcycleSvc,
		saleSvc:       p.SaleSvc,
		invoiceSvc:    p.InvoiceSvc,
		paymentSvc:    p.PaymentSvc,
		ledgerSvc:     p.LedgerSvc,
		employeeSvc:   p.EmployeeSvc,
		dashboardSvc:  p.DashboardSvc,
		pdf:           p.PDF,
		exportCfg:     p.ExportSettings,
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(Metrics())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerRoutes(r *gin.Engine, s *Server) {
	r.POST("/auth/login", s.Login)
	r.POST("/auth/logout", s.AuthRequired(), s.Logout)
	r.GET("/auth/me", s.AuthRequired(), s.Me)

	api := r.Group("/api", s.AuthRequired())

	api.GET("/customers", s.authorize(authorization.ObjectCustomer, authorization.ActionRead), s.ListCustomers)
	api.POST("/customers", s.authorize(authorization.ObjectCustomer, authorization.ActionWrite), s.CreateCustomer)
	api.GET("/customers/export.xlsx", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportCustomersExcel)
	api.GET("/customers/export.pdf", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportCustomersPDF)
	api.GET("/customers/:id", s.authorize(authorization.ObjectCustomer, authorization.ActionRead), s.GetCustomer)
	api.PUT("/customers/:id", s.authorize(authorization.ObjectCustomer, authorization.ActionWrite), s.UpdateCustomer)
	api.DELETE("/customers/:id", s.authorize(authorization.ObjectCustomer, authorization.ActionDelete), s.DeleteCustomer)
	api.GET("/customers/:id/ledger", s.authorize(authorization.ObjectCustomer, authorization.ActionRead), s.CustomerActivity)
	api.POST("/customers/:id/adjustments", s.authorize(authorization.ObjectCustomer, authorization.ActionWrite), s.AddAdjustment)

	api.GET("/products", s.authorize(authorization.ObjectProduct, authorization.ActionRead), s.ListProducts)
	api.POST("/products", s.authorize(authorization.ObjectProduct, authorization.ActionWrite), s.CreateProduct)
	api.GET("/products/categories", s.authorize(authorization.ObjectProduct, authorization.ActionRead), s.ListCategories)
	api.POST("/products/categories", s.authorize(authorization.ObjectProduct, authorization.ActionWrite), s.CreateCategory)
	api.GET("/products/export.xlsx", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportProductsExcel)
	api.GET("/products/export.pdf", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportProductsPDF)
	api.GET("/products/:id", s.authorize(authorization.ObjectProduct, authorization.ActionRead), s.GetProduct)
	api.PUT("/products/:id", s.authorize(authorization.ObjectProduct, authorization.ActionWrite), s.UpdateProduct)
	api.DELETE("/products/:id", s.authorize(authorization.ObjectProduct, authorization.ActionDelete), s.DeleteProduct)
	api.POST("/products/:id/stock", s.authorize(authorization.ObjectProduct, authorization.ActionWrite), s.AdjustProductStock)

	api.GET("/motorcycles", s.authorize(authorization.ObjectMotorcycle, authorization.ActionRead), s.ListMotorcycles)
	api.POST("/motorcycles", s.authorize(authorization.ObjectMotorcycle, authorization.ActionWrite), s.CreateMotorcycle)
	api.GET("/motorcycles/export.xlsx", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportMotorcyclesExcel)
	api.GET("/motorcycles/export.pdf", s.authorize(authorization.ObjectExport, authorization.ActionExport), s.ExportMotorcyclesPDF)
	api.GET("/motorcycles/:id", s.authorize(authorization.ObjectMotorcycle, authorization.ActionRead), s.GetMotorcycle)
	api.PUT("/motorcycles/:id", s.authorize(authorization.ObjectMotorcycle, authorization.ActionWrite), s.UpdateMotorcycle)
	api.DELETE("/motorcycles/:id", s.authorize(authorization.ObjectMotorcycle, authorization.ActionDelete), s.DeleteMotorcycle)
	api.POST("/motorcycles/:id/stock", s.authorize(authorization.ObjectMotorcycle, authorization.ActionWrite), s.AdjustMotorcycleStock)

	api.GET("/sales", s.authorize(authorization.ObjectSale, authorization.ActionRead), s.ListSales)
	api.POST("/sales", s.authorize(authorization.ObjectSale, authorization.ActionWrite), s.CreateSale)
	api.GET("/sales/:id", s.authorize(authorization.ObjectSale, authorization.ActionRead), s.GetSale)
	api.PUT("/sales/:id", s.authorize(authorization.ObjectSale, authorization.ActionWrite), s.UpdateSale)
	api.DELETE("/sales/:id", s.authorize(authorization.ObjectSale, authorization.ActionDelete), s.DeleteSale)

	api.GET("/invoices", s.authorize(authorization.ObjectInvoice, authorization.ActionRead), s.ListInvoices)
	api.POST("/invoices", s.authorize(authorization.ObjectInvoice, authorization.ActionWrite), s.CreateInvoice)
	api.POST("/invoices/reclassify", s.authorize(authorization.ObjectInvoice, authorization.ActionWrite), s.ReclassifyInvoices)
	api.GET("/invoices/:id", s.authorize(authorization.ObjectInvoice, authorization.ActionRead), s.GetInvoice)
	api.PUT("/invoices/:id", s.authorize(authorization.ObjectInvoice, authorization.ActionWrite), s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.authorize(authorization.ObjectInvoice, authorization.ActionDelete), s.DeleteInvoice)
	api.POST("/invoices/:id/finalize", s.authorize(authorization.ObjectInvoice, authorization.ActionWrite), s.FinalizeInvoice)
	api.POST("/invoices/:id/cancel", s.authorize(authorization.ObjectInvoice, authorization.ActionWrite), s.CancelInvoice)
	api.GET("/invoices/:id/print", s.authorize(authorization.ObjectInvoice, authorization.ActionRead), s.PrintInvoice)
	api.GET("/invoices/:id/pdf", s.authorize(authorization.ObjectInvoice, authorization.ActionRead), s.InvoicePDF)

	api.GET("/payments", s.authorize(authorization.ObjectPayment, authorization.ActionRead), s.ListPayments)
	api.POST("/payments", s.authorize(authorization.ObjectPayment, authorization.ActionWrite), s.CreatePayment)
	api.GET("/payments/:id", s.authorize(authorization.ObjectPayment, authorization.ActionRead), s.GetPayment)
	api.DELETE("/payments/:id", s.authorize(authorization.ObjectPayment, authorization.ActionDelete), s.DeletePayment)

	api.GET("/employees", s.authorize(authorization.ObjectEmployee, authorization.ActionRead), s.ListEmployees)
	api.POST("/employees", s.authorize(authorization.ObjectEmployee, authorization.ActionWrite), s.CreateEmployee)
	api.GET("/employees/:id", s.authorize(authorization.ObjectEmployee, authorization.ActionRead), s.GetEmployee)
	api.PUT("/employees/:id", s.authorize(authorization.ObjectEmployee, authorization.ActionWrite), s.UpdateEmployee)
	api.DELETE("/employees/:id", s.authorize(authorization.ObjectEmployee, authorization.ActionDelete), s.DeleteEmployee)

	api.GET("/statistics", s.authorize(authorization.ObjectDashboard, authorization.ActionRead), s.Statistics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
