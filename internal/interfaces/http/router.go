package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/billing"
	"github.com/jhoicas/backoffice-api/internal/application/export"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	JWTSecret   string
	Metrics     *metrics.Metrics // nil = sin /metrics

	AuthUC         *auth.AuthUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	UnitUC         *usecase.UnitUseCase
	ProductGroupUC *usecase.ProductGroupUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *billing.CustomerUseCase
	StockQueryUC   *stock.QueryUseCase
	TransferUC     *stock.TransferUseCase
	AdjustmentUC   *stock.AdjustmentUseCase
	StockLotUC     *stock.StockLotUseCase
	InvoiceUC      *billing.CreateInvoiceUseCase
	InvoicePDFUC   *billing.PDFUseCase
	LabelsUC       *labels.UseCase
	ExportUC       *export.UseCase
}

// Router registra las rutas de la API.
//
// Roles: lectura para cualquier usuario autenticado; documentos de stock y catálogo
// para admin y bodeguero; clientes y facturas para admin y vendedor; borrados solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.ServiceName))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	warehouseRoles := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	salesRoles := RequireRole(entity.RoleAdmin, entity.RoleVendedor)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/users", adminOnly, authHandler.CreateUser)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", warehouseRoles, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseRoles, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	unitHandler := NewUnitHandler(deps.UnitUC)
	units := protected.Group("/units")
	units.Post("/", warehouseRoles, unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", warehouseRoles, unitHandler.Update)
	units.Delete("/:id", adminOnly, unitHandler.Delete)

	groupHandler := NewProductGroupHandler(deps.ProductGroupUC)
	groups := protected.Group("/product-groups")
	groups.Post("/", warehouseRoles, groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", warehouseRoles, groupHandler.Update)
	groups.Delete("/:id", adminOnly, groupHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC, deps.LabelsUC)
	products := protected.Group("/products")
	products.Post("/", warehouseRoles, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/barcode", productHandler.Barcode)
	products.Get("/:id/qr", productHandler.QR)
	products.Put("/:id", warehouseRoles, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", warehouseRoles, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", warehouseRoles, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", salesRoles, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", salesRoles, customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Stock: /movements antes de /:productId/:warehouseId.
	stockHandler := NewStockHandler(deps.StockQueryUC)
	stockGroup := protected.Group("/stock")
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Get("/:productId/:warehouseId", stockHandler.Get)

	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers := protected.Group("/transfers")
	transfers.Post("/", warehouseRoles, transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", warehouseRoles, transferHandler.Update)
	transfers.Delete("/:id", adminOnly, transferHandler.Delete)

	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments := protected.Group("/adjustments")
	adjustments.Post("/", warehouseRoles, adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Put("/:id", warehouseRoles, adjustmentHandler.Update)
	adjustments.Delete("/:id", adminOnly, adjustmentHandler.Delete)

	lotHandler := NewStockLotHandler(deps.StockLotUC)
	lots := protected.Group("/stock-lots")
	lots.Post("/", warehouseRoles, lotHandler.Create)
	lots.Post("/import", warehouseRoles, lotHandler.Import)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Put("/:id", warehouseRoles, lotHandler.Update)
	lots.Delete("/:id", adminOnly, lotHandler.Delete)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices := protected.Group("/invoices")
	invoices.Post("/", salesRoles, invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	labelHandler := NewLabelHandler(deps.LabelsUC)
	protected.Post("/labels", labelHandler.Generate)

	exportHandler := NewExportHandler(deps.ExportUC)
	exports := protected.Group("/export")
	exports.Get("/stock", exportHandler.Stock)
	exports.Get("/products", exportHandler.Products)
	exports.Get("/transfers", exportHandler.Transfers)
	exports.Get("/adjustments", exportHandler.Adjustments)
	exports.Get("/stock-lots", exportHandler.StockLots)
	exports.Get("/customers", exportHandler.Customers)
	exports.Get("/suppliers", exportHandler.Suppliers)
}
