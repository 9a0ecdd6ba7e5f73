package entity

import "time"

// ProductGroup agrupa productos para catálogo y reportes.
type ProductGroup struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
