package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Unit, error)
	Update(ctx context.Context, unit *entity.Unit) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f CatalogFilter) ([]*entity.Unit, int, error)
}
