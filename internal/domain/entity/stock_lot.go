package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLotStatus estado de un lote de compra.
type StockLotStatus string

const (
	StockLotPending   StockLotStatus = "PENDING"
	StockLotDelivered StockLotStatus = "DELIVERED"
	StockLotCancelled StockLotStatus = "CANCELLED"
)

// Valid indica si s es un estado conocido.
func (s StockLotStatus) Valid() bool {
	switch s {
	case StockLotPending, StockLotDelivered, StockLotCancelled:
		return true
	}
	return false
}

// StockLot lote recibido de un proveedor. Entra al stock una sola vez, al pasar a DELIVERED,
// recalculando el costo promedio ponderado con PurchasePrice.
type StockLot struct {
	ID             string
	StoreID        string
	WarehouseID    string
	SupplierID     string
	ProductID      string
	LotReferenceNo string
	Quantity       int64
	PurchasePrice  decimal.Decimal
	PurchaseDate   time.Time
	Status         StockLotStatus
	OtherCharges   decimal.Decimal
	Discount       decimal.Decimal
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Solo lectura (JOIN).
	WarehouseName string
	SupplierName  string
	ProductName   string
}

// TotalCost = cantidad * precio + otros cargos - descuento.
func (l *StockLot) TotalCost() decimal.Decimal {
	return l.PurchasePrice.Mul(decimal.NewFromInt(l.Quantity)).Add(l.OtherCharges).Sub(l.Discount)
}
