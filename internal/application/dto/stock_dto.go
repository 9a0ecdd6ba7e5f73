package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecordResponse nivel de stock de un producto en una bodega.
type StockRecordResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	ProductName      string           `json:"product_name,omitempty"`
	ProductSKU       string           `json:"product_sku,omitempty"`
	WarehouseID      string           `json:"warehouse_id"`
	WarehouseName    string           `json:"warehouse_name,omitempty"`
	Quantity         int64            `json:"quantity"`
	AvgPurchasePrice *decimal.Decimal `json:"avg_purchase_price"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// StockListResponse lista paginada de niveles de stock.
type StockListResponse struct {
	Items []StockRecordResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StockListQuery filtros de GET /api/stock.
type StockListQuery struct {
	WarehouseID       string
	ProductID         string
	LowStockThreshold *int64
	PageRequest
}

// StockMovementResponse línea del kardex.
type StockMovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name,omitempty"`
	WarehouseID   string           `json:"warehouse_id"`
	WarehouseName string           `json:"warehouse_name,omitempty"`
	Type          string           `json:"type"`
	Quantity      int64            `json:"quantity"`
	UnitCost      *decimal.Decimal `json:"unit_cost,omitempty"`
	BalanceAfter  int64            `json:"balance_after"`
	DocumentType  string           `json:"document_type"`
	DocumentID    string           `json:"document_id"`
	CreatedBy     string           `json:"created_by,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// StockMovementListResponse lista paginada del kardex.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// MovementListQuery filtros de GET /api/stock/movements.
type MovementListQuery struct {
	WarehouseID string
	ProductID   string
	Type        string
	DateRangeQuery
	PageRequest
}
