package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas (cabecera + detalle).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice, details []*entity.InvoiceDetail) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Invoice, []*entity.InvoiceDetail, error)
	// NextNumber devuelve el siguiente consecutivo del prefijo en la tienda.
	NextNumber(ctx context.Context, storeID, prefix string) (int64, error)
	List(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, int, error)
}
