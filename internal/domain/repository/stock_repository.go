package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// StockRepository define el puerto del libro de stock por (producto, bodega).
// Las escrituras se usan dentro de transacciones; Get/GetForUpdate devuelven nil si no hay registro.
type StockRepository interface {
	Get(ctx context.Context, productID, warehouseID string) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.StockRecord, error)
	// Create inserta un registro nuevo; una inserción concurrente del mismo par devuelve domain.ErrConflict.
	Create(ctx context.Context, rec *entity.StockRecord) error
	Update(ctx context.Context, rec *entity.StockRecord) error
	List(ctx context.Context, f StockFilter) ([]*entity.StockRecord, int, error)
}
