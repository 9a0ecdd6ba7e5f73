package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// AdjustmentRepository define el puerto de persistencia para StockAdjustment.
type AdjustmentRepository interface {
	Create(ctx context.Context, a *entity.StockAdjustment) error
	GetByID(ctx context.Context, storeID, id string) (*entity.StockAdjustment, error)
	GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockAdjustment, error)
	Update(ctx context.Context, a *entity.StockAdjustment) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f AdjustmentFilter) ([]*entity.StockAdjustment, int, error)
}
