package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	MovementTransferOut   = "TRANSFER_OUT"
	MovementTransferIn    = "TRANSFER_IN"
	MovementAdjustmentIn  = "ADJUSTMENT_IN"
	MovementAdjustmentOut = "ADJUSTMENT_OUT"
	MovementLotReceipt    = "LOT_RECEIPT"
	MovementSale          = "SALE"
)

// Tipos de documento que originan un movimiento.
const (
	DocumentTransfer   = "transfer"
	DocumentAdjustment = "adjustment"
	DocumentStockLot   = "stock_lot"
	DocumentInvoice    = "invoice"
)

// StockMovement registro inmutable de una mutación de StockRecord, escrito en la misma
// transacción que el documento que la origina.
type StockMovement struct {
	ID           string
	StoreID      string
	ProductID    string
	WarehouseID  string
	Type         string
	Quantity     int64               // con signo: positivo entra, negativo sale
	UnitCost     decimal.NullDecimal // costo aplicado (entradas con costo) o promedio vigente
	BalanceAfter int64
	DocumentType string
	DocumentID   string
	CreatedBy    string
	CreatedAt    time.Time

	// Solo lectura (JOIN).
	ProductName   string
	WarehouseName string
}
