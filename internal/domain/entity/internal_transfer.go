package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus estado de un traslado entre bodegas.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferCancelled TransferStatus = "CANCELLED"
)

// Valid indica si s es un estado conocido.
func (s TransferStatus) Valid() bool {
	switch s {
	case TransferPending, TransferCompleted, TransferCancelled:
		return true
	}
	return false
}

// InternalTransfer mueve unidades de un producto entre dos bodegas de la misma tienda.
// El stock se mueve una sola vez, al entrar en COMPLETED.
type InternalTransfer struct {
	ID              string
	StoreID         string
	FromWarehouseID string
	ToWarehouseID   string
	ProductID       string
	Quantity        int64
	Status          TransferStatus
	ReferenceNo     string
	TransferDate    time.Time
	CostForTransfer decimal.NullDecimal
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Solo lectura (JOIN).
	FromWarehouseName string
	ToWarehouseName   string
	ProductName       string
}
