package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusIssued = "ISSUED"
)

// Invoice representa la cabecera de una factura de venta. Al emitirse descuenta stock
// de WarehouseID en la misma transacción.
type Invoice struct {
	ID          string
	StoreID     string
	CustomerID  string
	WarehouseID string
	Prefix      string
	Number      string
	Date        time.Time
	NetTotal    decimal.Decimal
	TaxTotal    decimal.Decimal
	GrandTotal  decimal.Decimal
	Status      string
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Solo lectura (JOIN).
	CustomerName  string
	CustomerTaxID string
}

// QRData contenido del código QR impreso en la factura.
func (i *Invoice) QRData() string {
	return i.Prefix + i.Number + "|" + i.Date.Format("2006-01-02") + "|" + i.GrandTotal.StringFixed(2) + "|" + i.ID
}
