package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest body para POST /api/transfers.
// Status vacío equivale a PENDING; COMPLETED mueve el stock en la misma transacción.
type CreateTransferRequest struct {
	FromWarehouseID string           `json:"from_warehouse_id" validate:"required,uuid"`
	ToWarehouseID   string           `json:"to_warehouse_id" validate:"required,uuid"`
	ProductID       string           `json:"product_id" validate:"required,uuid"`
	Quantity        int64            `json:"quantity" validate:"gt=0"`
	Status          string           `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	ReferenceNo     string           `json:"reference_no,omitempty" validate:"max=100"`
	TransferDate    time.Time        `json:"transfer_date" validate:"required"`
	CostForTransfer *decimal.Decimal `json:"cost_for_transfer,omitempty"`
	Notes           string           `json:"notes,omitempty" validate:"max=1000"`
}

// UpdateTransferRequest body para PUT /api/transfers/:id. Campos nil no cambian.
type UpdateTransferRequest struct {
	FromWarehouseID *string          `json:"from_warehouse_id" validate:"omitempty,uuid"`
	ToWarehouseID   *string          `json:"to_warehouse_id" validate:"omitempty,uuid"`
	ProductID       *string          `json:"product_id" validate:"omitempty,uuid"`
	Quantity        *int64           `json:"quantity" validate:"omitempty,gt=0"`
	Status          *string          `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	ReferenceNo     *string          `json:"reference_no" validate:"omitempty,max=100"`
	TransferDate    *time.Time       `json:"transfer_date"`
	CostForTransfer *decimal.Decimal `json:"cost_for_transfer"`
	Notes           *string          `json:"notes" validate:"omitempty,max=1000"`
}

// TransferResponse traslado con nombres de bodegas y producto.
type TransferResponse struct {
	ID                string           `json:"id"`
	StoreID           string           `json:"store_id"`
	FromWarehouseID   string           `json:"from_warehouse_id"`
	FromWarehouseName string           `json:"from_warehouse_name,omitempty"`
	ToWarehouseID     string           `json:"to_warehouse_id"`
	ToWarehouseName   string           `json:"to_warehouse_name,omitempty"`
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name,omitempty"`
	Quantity          int64            `json:"quantity"`
	Status            string           `json:"status"`
	ReferenceNo       string           `json:"reference_no,omitempty"`
	TransferDate      time.Time        `json:"transfer_date"`
	CostForTransfer   *decimal.Decimal `json:"cost_for_transfer,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	CreatedBy         string           `json:"created_by,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TransferListQuery filtros de GET /api/transfers.
type TransferListQuery struct {
	Status      string
	WarehouseID string
	ProductID   string
	DateRangeQuery
	PageRequest
}
