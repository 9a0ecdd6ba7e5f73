// Package memory implementa los repositorios en memoria detrás de los mismos puertos que
// postgres. Se usa con STORAGE_DRIVER=memory (desarrollo) y en los tests de los casos de uso.
//
// Las transacciones se serializan con el mutex del Store: Run toma el lock exclusivo, guarda
// una copia del estado y la restaura si fn devuelve error. Los repositorios entregados a fn
// no vuelven a tomar el lock; fn no debe usar los repositorios de fuera de la transacción.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

type state struct {
	stores      map[string]entity.Store
	users       map[string]entity.User
	warehouses  map[string]entity.Warehouse
	units       map[string]entity.Unit
	groups      map[string]entity.ProductGroup
	products    map[string]entity.Product
	suppliers   map[string]entity.Supplier
	customers   map[string]entity.Customer
	stock       map[string]entity.StockRecord     // clave stockKey(product, warehouse)
	movements   []entity.StockMovement            // orden de inserción
	transfers   map[string]entity.InternalTransfer
	adjustments map[string]entity.StockAdjustment
	lots        map[string]entity.StockLot
	invoices    map[string]entity.Invoice
	details     map[string][]entity.InvoiceDetail // por invoice_id
}

func newState() state {
	return state{
		stores:      map[string]entity.Store{},
		users:       map[string]entity.User{},
		warehouses:  map[string]entity.Warehouse{},
		units:       map[string]entity.Unit{},
		groups:      map[string]entity.ProductGroup{},
		products:    map[string]entity.Product{},
		suppliers:   map[string]entity.Supplier{},
		customers:   map[string]entity.Customer{},
		stock:       map[string]entity.StockRecord{},
		transfers:   map[string]entity.InternalTransfer{},
		adjustments: map[string]entity.StockAdjustment{},
		lots:        map[string]entity.StockLot{},
		invoices:    map[string]entity.Invoice{},
		details:     map[string][]entity.InvoiceDetail{},
	}
}

// clone copia el estado completo. Las entidades son valores sin referencias salvo el
// detalle de facturas, que se copia por slice.
func (st *state) clone() state {
	c := state{
		stores:      maps.Clone(st.stores),
		users:       maps.Clone(st.users),
		warehouses:  maps.Clone(st.warehouses),
		units:       maps.Clone(st.units),
		groups:      maps.Clone(st.groups),
		products:    maps.Clone(st.products),
		suppliers:   maps.Clone(st.suppliers),
		customers:   maps.Clone(st.customers),
		stock:       maps.Clone(st.stock),
		movements:   slices.Clone(st.movements),
		transfers:   maps.Clone(st.transfers),
		adjustments: maps.Clone(st.adjustments),
		lots:        maps.Clone(st.lots),
		invoices:    maps.Clone(st.invoices),
		details:     make(map[string][]entity.InvoiceDetail, len(st.details)),
	}
	for k, v := range st.details {
		c.details[k] = slices.Clone(v)
	}
	return c
}

// Store estado en memoria compartido por todos los repositorios.
type Store struct {
	mu sync.RWMutex
	st state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Repos repositorios fuera de transacción: cada llamada toma el lock por su cuenta.
func (s *Store) Repos() ports.Repos {
	return view{s: s}
}

// TxRunner devuelve el ejecutor de transacciones del almacén.
func (s *Store) TxRunner() ports.TxRunner {
	return txRunner{s: s}
}

type txRunner struct {
	s *Store
}

// Run ejecuta fn con el lock exclusivo y restaura el estado anterior si fn falla.
func (t txRunner) Run(ctx context.Context, fn func(r ports.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	saved := t.s.st.clone()
	if err := fn(view{s: t.s, tx: true}); err != nil {
		t.s.st = saved
		return err
	}
	return nil
}

// view implementa ports.Repos sobre el Store. Con tx=true el lock ya lo tiene Run.
type view struct {
	s  *Store
	tx bool
}

func (v view) read(fn func(st *state)) {
	if !v.tx {
		v.s.mu.RLock()
		defer v.s.mu.RUnlock()
	}
	fn(&v.s.st)
}

func (v view) write(fn func(st *state) error) error {
	if !v.tx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(&v.s.st)
}

func (v view) Stores() repository.StoreRepository { return storeRepo{v} }
func (v view) Users() repository.UserRepository { return userRepo{v} }
func (v view) Warehouses() repository.WarehouseRepository { return warehouseRepo{v} }
func (v view) Units() repository.UnitRepository { return unitRepo{v} }
func (v view) ProductGroups() repository.ProductGroupRepository { return groupRepo{v} }
func (v view) Products() repository.ProductRepository { return productRepo{v} }
func (v view) Suppliers() repository.SupplierRepository { return supplierRepo{v} }
func (v view) Customers() repository.CustomerRepository { return customerRepo{v} }
func (v view) Stock() repository.StockRepository { return stockRepo{v} }
func (v view) Movements() repository.StockMovementRepository { return movementRepo{v} }
func (v view) Transfers() repository.TransferRepository { return transferRepo{v} }
func (v view) Adjustments() repository.AdjustmentRepository { return adjustmentRepo{v} }
func (v view) Lots() repository.StockLotRepository { return lotRepo{v} }
func (v view) Invoices() repository.InvoiceRepository { return invoiceRepo{v} }

// paginate recorta items a la ventana pedida. Limit <= 0 devuelve todo desde Offset.
func paginate[T any](items []T, p repository.Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	if p.Offset > 0 {
		items = items[p.Offset:]
	}
	if p.Limit > 0 && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func matches(want, got string) bool {
	return want == "" || want == got
}

func ptr[T any](v T) *T {
	return &v
}
