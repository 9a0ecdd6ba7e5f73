package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura.
type InvoiceDetail struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal // porcentaje
	Subtotal  decimal.Decimal // sin impuesto
	TaxAmount decimal.Decimal

	// Solo lectura (JOIN).
	ProductName string
	ProductSKU  string
}
