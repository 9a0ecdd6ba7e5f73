package entity

import "time"

// Customer representa un cliente de la tienda (facturación).
type Customer struct {
	ID        string
	StoreID   string
	Name      string
	TaxID     string // NIT o Cédula, único por tienda
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
