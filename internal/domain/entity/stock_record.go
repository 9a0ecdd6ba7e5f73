package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord cantidad y costo promedio ponderado de un producto en una bodega.
// (ProductID, WarehouseID) es único. Solo lo modifican los protocolos de stock.
type StockRecord struct {
	ID               string
	StoreID          string
	ProductID        string
	WarehouseID      string
	Quantity         int64
	AvgPurchasePrice decimal.NullDecimal // nulo hasta la primera entrada con costo
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Solo lectura (JOIN).
	ProductName   string
	ProductSKU    string
	WarehouseName string
}
