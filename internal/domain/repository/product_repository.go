package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// SKU y Barcode son únicos por tienda: una colisión devuelve domain.ErrDuplicate.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, storeID, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
}
