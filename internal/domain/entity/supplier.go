package entity

import "time"

// Supplier proveedor de mercancía; origen de los lotes de stock.
type Supplier struct {
	ID        string
	StoreID   string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
