package dto

import "time"

// CreateAdjustmentRequest body para POST /api/adjustments.
type CreateAdjustmentRequest struct {
	WarehouseID    string    `json:"warehouse_id" validate:"required,uuid"`
	ProductID      string    `json:"product_id" validate:"required,uuid"`
	Quantity       int64     `json:"quantity" validate:"gt=0"`
	Type           string    `json:"type" validate:"required,oneof=INCREASE DECREASE"`
	AdjustmentDate time.Time `json:"adjustment_date" validate:"required"`
	ReferenceNo    string    `json:"reference_no,omitempty" validate:"max=100"`
	Notes          string    `json:"notes,omitempty" validate:"max=1000"`
}

// UpdateAdjustmentRequest body para PUT /api/adjustments/:id. Solo modifica el documento.
type UpdateAdjustmentRequest struct {
	WarehouseID    *string    `json:"warehouse_id" validate:"omitempty,uuid"`
	ProductID      *string    `json:"product_id" validate:"omitempty,uuid"`
	Quantity       *int64     `json:"quantity" validate:"omitempty,gt=0"`
	Type           *string    `json:"type" validate:"omitempty,oneof=INCREASE DECREASE"`
	AdjustmentDate *time.Time `json:"adjustment_date"`
	ReferenceNo    *string    `json:"reference_no" validate:"omitempty,max=100"`
	Notes          *string    `json:"notes" validate:"omitempty,max=1000"`
}

// AdjustmentResponse ajuste con nombres de bodega y producto.
type AdjustmentResponse struct {
	ID             string    `json:"id"`
	StoreID        string    `json:"store_id"`
	WarehouseID    string    `json:"warehouse_id"`
	WarehouseName  string    `json:"warehouse_name,omitempty"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name,omitempty"`
	Quantity       int64     `json:"quantity"`
	Type           string    `json:"type"`
	AdjustmentDate time.Time `json:"adjustment_date"`
	ReferenceNo    string    `json:"reference_no,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedBy      string    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AdjustmentListResponse lista paginada de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// AdjustmentListQuery filtros de GET /api/adjustments.
type AdjustmentListQuery struct {
	Type        string
	WarehouseID string
	ProductID   string
	DateRangeQuery
	PageRequest
}
