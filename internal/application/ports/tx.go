package ports

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Repos agrupa los repositorios de la aplicación. La misma interfaz sirve para lecturas
// fuera de transacción y para los repositorios atados a una transacción en TxRunner.Run.
type Repos interface {
	Stores() repository.StoreRepository
	Users() repository.UserRepository
	Warehouses() repository.WarehouseRepository
	Units() repository.UnitRepository
	ProductGroups() repository.ProductGroupRepository
	Products() repository.ProductRepository
	Suppliers() repository.SupplierRepository
	Customers() repository.CustomerRepository
	Stock() repository.StockRepository
	Movements() repository.StockMovementRepository
	Transfers() repository.TransferRepository
	Adjustments() repository.AdjustmentRepository
	Lots() repository.StockLotRepository
	Invoices() repository.InvoiceRepository
}

// TxRunner ejecuta fn dentro de una transacción (unidad de trabajo): Commit si fn devuelve nil,
// Rollback de todas las escrituras si devuelve error. El error de fn se propaga sin cambios.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
