package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/agile-rental-management/internal/domain"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/customer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/product"
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/warehouse"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/reports"
	"github.com/salilgupta4/agile-rental-management/internal/domain/settings"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/http/v1/handlers"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/http/v1/middleware"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres/document_repo"
	"github.com/salilgupta4/agile-rental-management/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository work in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Numerator for document number generation
	Numerator domain.Numerator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(v1, cfg)
		registerDocumentRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
		registerSettingsRoutes(v1, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/products"), handler)
	}

	// --- WAREHOUSES ---
	{
		repo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
		service := warehouse.NewService(repo)
		handler := handlers.NewWarehouseHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/warehouses"), handler)
	}

	// --- CUSTOMERS ---
	{
		repo := catalog_repo.NewCustomerRepo(cfg.TxManager)
		service := customer.NewService(repo)
		handler := handlers.NewCustomerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/customers"), handler)
	}
}

// registerDocumentRoutes registers transaction document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// --- PURCHASES ---
	{
		repo := document_repo.NewPurchaseRepo(cfg.TxManager)
		service := purchase.NewService(repo, cfg.Numerator)
		handler := handlers.NewPurchaseHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/purchases"), handler)
	}

	// --- TRANSFERS ---
	{
		repo := document_repo.NewTransferRepo(cfg.TxManager)
		service := transfer.NewService(repo, cfg.Numerator)
		handler := handlers.NewTransferHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/transfers"), handler)
	}

	// --- RETURNS ---
	{
		repo := document_repo.NewReturnRepo(cfg.TxManager)
		service := rental_return.NewService(repo, cfg.Numerator)
		handler := handlers.NewReturnHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/returns"), handler)
	}

	// --- SALES ---
	{
		repo := document_repo.NewSaleRepo(cfg.TxManager)
		service := sale.NewService(repo, cfg.Numerator)
		handler := handlers.NewSaleHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/sales"), handler)
	}

	// --- RENTAL ORDERS ---
	{
		repo := document_repo.NewRentalOrderRepo(cfg.TxManager)
		service := rentalorder.NewService(repo, cfg.Numerator)
		handler := handlers.NewRentalOrderHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/rental-orders"), handler)
	}
}

// registerReportRoutes registers report endpoints. Reports read the
// full transaction logs, so the handler gets every document repo.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	settingsService := settings.NewService(postgres.NewSettingsRepo(cfg.TxManager))
	reportService := reports.NewService(
		document_repo.NewPurchaseRepo(cfg.TxManager),
		document_repo.NewTransferRepo(cfg.TxManager),
		document_repo.NewReturnRepo(cfg.TxManager),
		document_repo.NewSaleRepo(cfg.TxManager),
		document_repo.NewRentalOrderRepo(cfg.TxManager),
		settingsService,
	)

	handler := handlers.NewReportsHandler(baseHandler, reportService)
	handler.RegisterRoutes(rg.Group("/reports"))
}

// registerSettingsRoutes registers settings endpoints.
func registerSettingsRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	service := settings.NewService(postgres.NewSettingsRepo(cfg.TxManager))
	handler := handlers.NewSettingsHandler(baseHandler, service)
	handler.RegisterRoutes(rg.Group("/settings"))
}
