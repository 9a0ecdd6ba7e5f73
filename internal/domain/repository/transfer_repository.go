package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para InternalTransfer.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.InternalTransfer) error
	GetByID(ctx context.Context, storeID, id string) (*entity.InternalTransfer, error)
	GetForUpdate(ctx context.Context, storeID, id string) (*entity.InternalTransfer, error)
	Update(ctx context.Context, t *entity.InternalTransfer) error
	// Delete devuelve domain.ErrNotFound si el traslado no existe en la tienda.
	Delete(ctx context.Context, storeID, id string) error
	List(ctx context.Context, f TransferFilter) ([]*entity.InternalTransfer, int, error)
}
