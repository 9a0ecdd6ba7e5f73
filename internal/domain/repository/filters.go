package repository

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// Page ventana de un listado. Limit <= 0 significa sin límite (exportaciones).
type Page struct {
	Limit  int
	Offset int
}

// DateRange rango inclusivo sobre la fecha del documento; nil = abierto.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains indica si t cae en el rango.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// CatalogFilter filtro común de catálogos (bodegas, unidades, grupos, proveedores, clientes).
type CatalogFilter struct {
	StoreID string
	Search  string // coincide con nombre (ILIKE)
	Page
}

// ProductFilter filtro de productos.
type ProductFilter struct {
	StoreID        string
	Search         string // nombre, SKU o código de barras
	ProductGroupID string
	Page
}

// StockFilter filtro de niveles de stock.
type StockFilter struct {
	StoreID           string
	WarehouseID       string
	ProductID         string
	LowStockThreshold *int64 // solo registros con cantidad <= umbral
	Page
}

// MovementFilter filtro del kardex.
type MovementFilter struct {
	StoreID     string
	WarehouseID string
	ProductID   string
	Type        string
	DateRange
	Page
}

// TransferFilter filtro de traslados. WarehouseID coincide con origen o destino.
type TransferFilter struct {
	StoreID     string
	Status      entity.TransferStatus
	WarehouseID string
	ProductID   string
	DateRange
	Page
}

// AdjustmentFilter filtro de ajustes.
type AdjustmentFilter struct {
	StoreID     string
	Type        entity.AdjustmentType
	WarehouseID string
	ProductID   string
	DateRange
	Page
}

// StockLotFilter filtro de lotes.
type StockLotFilter struct {
	StoreID     string
	Status      entity.StockLotStatus
	WarehouseID string
	SupplierID  string
	ProductID   string
	DateRange
	Page
}

// InvoiceFilter filtro de facturas.
type InvoiceFilter struct {
	StoreID    string
	CustomerID string
	DateRange
	Page
}
