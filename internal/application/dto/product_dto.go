package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU            string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode        string          `json:"barcode" validate:"omitempty,max=64"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description" validate:"max=1000"`
	Price          decimal.Decimal `json:"price"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	UnitID         string          `json:"unit_id" validate:"omitempty,uuid"`
	ProductGroupID string          `json:"product_group_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock no se toca aquí).
type UpdateProductRequest struct {
	SKU            *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode        *string          `json:"barcode" validate:"omitempty,max=64"`
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description" validate:"omitempty,max=1000"`
	Price          *decimal.Decimal `json:"price"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	UnitID         *string          `json:"unit_id" validate:"omitempty,uuid"`
	ProductGroupID *string          `json:"product_group_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	StoreID        string          `json:"store_id"`
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	UnitID         string          `json:"unit_id,omitempty"`
	ProductGroupID string          `json:"product_group_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductListQuery filtros de GET /api/products.
type ProductListQuery struct {
	Search         string
	ProductGroupID string
	PageRequest
}
