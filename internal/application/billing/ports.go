package billing

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// StockLedger integra facturación con inventario. Withdraw descuenta usando los repositorios
// del caller (misma transacción); si retorna error (ej: ErrInsufficientStock) el caller hace rollback.
type StockLedger interface {
	Withdraw(ctx context.Context, r ports.Repos, productID, warehouseID string, qty int64, ref stock.MovementRef) error
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, store *entity.Store, details []*entity.InvoiceDetail) ([]byte, error)
}
