package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

type stockRepo struct{ v view }

// joinStock completa los nombres de producto y bodega, como el JOIN de postgres.
func joinStock(st *state, rec entity.StockRecord) *entity.StockRecord {
	if p, ok := st.products[rec.ProductID]; ok {
		rec.ProductName, rec.ProductSKU = p.Name, p.SKU
	}
	if w, ok := st.warehouses[rec.WarehouseID]; ok {
		rec.WarehouseName = w.Name
	}
	return &rec
}

func (r stockRepo) Get(_ context.Context, productID, warehouseID string) (out *entity.StockRecord, _ error) {
	r.v.read(func(st *state) {
		if rec, ok := st.stock[stockKey(productID, warehouseID)]; ok {
			out = joinStock(st, rec)
		}
	})
	return out, nil
}

// GetForUpdate equivale a Get: dentro de Run el lock del Store ya es exclusivo.
func (r stockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.StockRecord, error) {
	return r.Get(ctx, productID, warehouseID)
}

func (r stockRepo) Create(_ context.Context, rec *entity.StockRecord) error {
	return r.v.write(func(st *state) error {
		k := stockKey(rec.ProductID, rec.WarehouseID)
		if _, ok := st.stock[k]; ok {
			return domain.ErrConflict
		}
		st.stock[k] = *rec
		return nil
	})
}

func (r stockRepo) Update(_ context.Context, rec *entity.StockRecord) error {
	return r.v.write(func(st *state) error {
		k := stockKey(rec.ProductID, rec.WarehouseID)
		if _, ok := st.stock[k]; !ok {
			return domain.ErrNotFound
		}
		st.stock[k] = *rec
		return nil
	})
}

func (r stockRepo) List(_ context.Context, f repository.StockFilter) (out []*entity.StockRecord, total int, _ error) {
	r.v.read(func(st *state) {
		for _, rec := range st.stock {
			if rec.StoreID != f.StoreID || !matches(f.WarehouseID, rec.WarehouseID) || !matches(f.ProductID, rec.ProductID) {
				continue
			}
			if f.LowStockThreshold != nil && rec.Quantity > *f.LowStockThreshold {
				continue
			}
			out = append(out, joinStock(st, rec))
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].WarehouseName != out[j].WarehouseName {
				return strings.ToLower(out[i].WarehouseName) < strings.ToLower(out[j].WarehouseName)
			}
			return strings.ToLower(out[i].ProductName) < strings.ToLower(out[j].ProductName)
		})
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}

type movementRepo struct{ v view }

func (r movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	return r.v.write(func(st *state) error {
		st.movements = append(st.movements, *m)
		return nil
	})
}

// List devuelve el kardex del más reciente al más antiguo.
func (r movementRepo) List(_ context.Context, f repository.MovementFilter) (out []*entity.StockMovement, total int, _ error) {
	r.v.read(func(st *state) {
		for i := len(st.movements) - 1; i >= 0; i-- {
			m := st.movements[i]
			if m.StoreID != f.StoreID || !matches(f.WarehouseID, m.WarehouseID) || !matches(f.ProductID, m.ProductID) || !matches(f.Type, m.Type) {
				continue
			}
			if !f.DateRange.Contains(m.CreatedAt) {
				continue
			}
			if p, ok := st.products[m.ProductID]; ok {
				m.ProductName = p.Name
			}
			if w, ok := st.warehouses[m.WarehouseID]; ok {
				m.WarehouseName = w.Name
			}
			out = append(out, ptr(m))
		}
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}
