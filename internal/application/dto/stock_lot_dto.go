package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockLotRequest body para POST /api/stock-lots (y cada ítem de la importación).
// Status vacío equivale a PENDING; DELIVERED ingresa el lote al stock.
type CreateStockLotRequest struct {
	WarehouseID    string           `json:"warehouse_id" validate:"required,uuid"`
	SupplierID     string           `json:"supplier_id" validate:"required,uuid"`
	ProductID      string           `json:"product_id" validate:"required,uuid"`
	LotReferenceNo string           `json:"lot_reference_no" validate:"required,max=100"`
	Quantity       int64            `json:"quantity" validate:"gt=0"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	PurchaseDate   time.Time        `json:"purchase_date" validate:"required"`
	Status         string           `json:"status,omitempty" validate:"omitempty,oneof=PENDING DELIVERED CANCELLED"`
	OtherCharges   *decimal.Decimal `json:"other_charges,omitempty"`
	Discount       *decimal.Decimal `json:"discount,omitempty"`
	Notes          string           `json:"notes,omitempty" validate:"max=1000"`
}

// UpdateStockLotRequest body para PUT /api/stock-lots/:id. Campos nil no cambian.
type UpdateStockLotRequest struct {
	WarehouseID    *string          `json:"warehouse_id" validate:"omitempty,uuid"`
	SupplierID     *string          `json:"supplier_id" validate:"omitempty,uuid"`
	ProductID      *string          `json:"product_id" validate:"omitempty,uuid"`
	LotReferenceNo *string          `json:"lot_reference_no" validate:"omitempty,min=1,max=100"`
	Quantity       *int64           `json:"quantity" validate:"omitempty,gt=0"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	Status         *string          `json:"status" validate:"omitempty,oneof=PENDING DELIVERED CANCELLED"`
	OtherCharges   *decimal.Decimal `json:"other_charges"`
	Discount       *decimal.Decimal `json:"discount"`
	Notes          *string          `json:"notes" validate:"omitempty,max=1000"`
}

// StockLotResponse lote con nombres de bodega, proveedor y producto.
type StockLotResponse struct {
	ID             string          `json:"id"`
	StoreID        string          `json:"store_id"`
	WarehouseID    string          `json:"warehouse_id"`
	WarehouseName  string          `json:"warehouse_name,omitempty"`
	SupplierID     string          `json:"supplier_id"`
	SupplierName   string          `json:"supplier_name,omitempty"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	LotReferenceNo string          `json:"lot_reference_no"`
	Quantity       int64           `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	Status         string          `json:"status"`
	OtherCharges   decimal.Decimal `json:"other_charges"`
	Discount       decimal.Decimal `json:"discount"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockLotListResponse lista paginada de lotes.
type StockLotListResponse struct {
	Items []StockLotResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockLotListQuery filtros de GET /api/stock-lots.
type StockLotListQuery struct {
	Status      string
	WarehouseID string
	SupplierID  string
	ProductID   string
	DateRangeQuery
	PageRequest
}

// ImportStockLotsRequest body para POST /api/stock-lots/import.
type ImportStockLotsRequest struct {
	Items []CreateStockLotRequest `json:"items"`
}

// ImportResult resultado de un ítem de la importación. Data es el lote creado o,
// si falló, la entrada original.
type ImportResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// ImportResponse respuesta de la importación, en el orden de la entrada.
type ImportResponse struct {
	Results   []ImportResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}
