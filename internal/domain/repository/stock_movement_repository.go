package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// StockMovementRepository kardex: solo inserción y consulta.
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovement, int, error)
}
