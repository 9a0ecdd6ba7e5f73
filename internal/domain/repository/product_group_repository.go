package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ProductGroupRepository define el puerto de persistencia para ProductGroup.
type ProductGroupRepository interface {
	Create(ctx context.Context, group *entity.ProductGroup) error
	GetByID(ctx context.Context, storeID, id string) (*entity.ProductGroup, error)
	Update(ctx context.Context, group *entity.ProductGroup) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f CatalogFilter) ([]*entity.ProductGroup, int, error)
}
