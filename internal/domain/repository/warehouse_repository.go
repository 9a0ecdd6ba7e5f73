package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
// Las lecturas por ID están acotadas a la tienda: un ID ajeno se comporta como inexistente (nil).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f CatalogFilter) ([]*entity.Warehouse, int, error)
}
