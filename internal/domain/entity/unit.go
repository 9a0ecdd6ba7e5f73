package entity

import "time"

// Unit unidad de medida (Unidad, Caja, Kg...). ShortName es único por tienda.
type Unit struct {
	ID        string
	StoreID   string
	Name      string
	ShortName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
