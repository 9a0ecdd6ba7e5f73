package entity

import "time"

// AdjustmentType dirección de un ajuste de inventario.
type AdjustmentType string

const (
	AdjustmentIncrease AdjustmentType = "INCREASE"
	AdjustmentDecrease AdjustmentType = "DECREASE"
)

// Valid indica si t es un tipo conocido.
func (t AdjustmentType) Valid() bool {
	return t == AdjustmentIncrease || t == AdjustmentDecrease
}

// StockAdjustment corrige el stock de una bodega. Se aplica al crear, sin estado pendiente.
type StockAdjustment struct {
	ID             string
	StoreID        string
	WarehouseID    string
	ProductID      string
	Quantity       int64
	Type           AdjustmentType
	AdjustmentDate time.Time
	ReferenceNo    string
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Solo lectura (JOIN).
	WarehouseName string
	ProductName   string
}
