// Package stock contiene la lógica pura del libro de stock: costo promedio ponderado,
// transiciones de activación y aritmética de los registros por (producto, bodega).
package stock

import "github.com/shopspring/decimal"

// CostScale decimales con que se guarda el costo promedio.
const CostScale = 4

// WeightedAverage implementa el costo promedio ponderado:
// NuevoCosto = ((CostoActual * StockActual) + (CostoEntrada * CantEntrada)) / (StockActual + CantEntrada).
// Un costo actual nulo cuenta como 0 en la suma ponderada.
func WeightedAverage(oldAvg decimal.NullDecimal, oldQty int64, unitCost decimal.Decimal, deltaQty int64) decimal.Decimal {
	sum := oldQty + deltaQty
	if sum <= 0 {
		return decimal.Zero
	}
	current := decimal.Zero
	if oldAvg.Valid {
		current = oldAvg.Decimal
	}
	num := current.Mul(decimal.NewFromInt(oldQty)).Add(unitCost.Mul(decimal.NewFromInt(deltaQty)))
	return num.Div(decimal.NewFromInt(sum)).Round(CostScale)
}
