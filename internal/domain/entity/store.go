package entity

import "time"

// Estados de una tienda.
const (
	StoreStatusActive    = "active"
	StoreStatusSuspended = "suspended"
)

// Store representa una tienda (tenant). Todo registro de negocio pertenece a una tienda.
type Store struct {
	ID        string
	Name      string
	TaxID     string // NIT o RUT
	Address   string
	Phone     string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
