package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tasas de IVA permitidas (porcentaje).
var AllowedTaxRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(5),
	decimal.NewFromInt(19),
}

// Product representa un producto o SKU del catálogo. El stock vive por bodega en StockRecord.
type Product struct {
	ID             string
	StoreID        string
	SKU            string // único por tienda
	Barcode        string // opcional, único por tienda
	Name           string
	Description    string
	Price          decimal.Decimal // precio de venta
	TaxRate        decimal.Decimal // porcentaje: 0, 5 o 19
	UnitID         string          // vacío = sin unidad
	ProductGroupID string          // vacío = sin grupo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAllowedTaxRate indica si rate es una de las tasas de IVA aceptadas.
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range AllowedTaxRates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}
