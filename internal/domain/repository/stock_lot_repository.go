package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// StockLotRepository define el puerto de persistencia para StockLot.
type StockLotRepository interface {
	Create(ctx context.Context, lot *entity.StockLot) error
	GetByID(ctx context.Context, storeID, id string) (*entity.StockLot, error)
	GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockLot, error)
	Update(ctx context.Context, lot *entity.StockLot) error
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f StockLotFilter) ([]*entity.StockLot, int, error)
}
