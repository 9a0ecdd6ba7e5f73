package postgres

import (
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ ports.Repos = (*Repos)(nil)

// Repos construye los repositorios sobre un Querier (pool o tx).
type Repos struct {
	q Querier
}

// NewRepos pasar el pool para lecturas sueltas o la tx dentro de TxRunner.Run.
func NewRepos(q Querier) *Repos {
	return &Repos{q: q}
}

func (r *Repos) Stores() repository.StoreRepository               { return NewStoreRepository(r.q) }
func (r *Repos) Users() repository.UserRepository                 { return NewUserRepository(r.q) }
func (r *Repos) Warehouses() repository.WarehouseRepository       { return NewWarehouseRepository(r.q) }
func (r *Repos) Units() repository.UnitRepository                 { return NewUnitRepository(r.q) }
func (r *Repos) ProductGroups() repository.ProductGroupRepository { return NewProductGroupRepository(r.q) }
func (r *Repos) Products() repository.ProductRepository           { return NewProductRepository(r.q) }
func (r *Repos) Suppliers() repository.SupplierRepository         { return NewSupplierRepository(r.q) }
func (r *Repos) Customers() repository.CustomerRepository         { return NewCustomerRepository(r.q) }
func (r *Repos) Stock() repository.StockRepository                { return NewStockRepository(r.q) }
func (r *Repos) Movements() repository.StockMovementRepository    { return NewStockMovementRepository(r.q) }
func (r *Repos) Transfers() repository.TransferRepository         { return NewTransferRepository(r.q) }
func (r *Repos) Adjustments() repository.AdjustmentRepository     { return NewAdjustmentRepository(r.q) }
func (r *Repos) Lots() repository.StockLotRepository              { return NewStockLotRepository(r.q) }
func (r *Repos) Invoices() repository.InvoiceRepository           { return NewInvoiceRepository(r.q) }
