package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

func warehouseName(st *state, id string) string { return st.warehouses[id].Name }
func productName(st *state, id string) string   { return st.products[id].Name }

// newestFirst ordena por fecha de creación descendente (desempate por ID).
func newestFirst[T any](items []*T, created func(*T) time.Time, id func(*T) string) {
	sort.Slice(items, func(i, j int) bool {
		a, b := created(items[i]), created(items[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return id(items[i]) < id(items[j])
	})
}

type transferRepo struct{ v view }

func transferStore(t entity.InternalTransfer) string { return t.StoreID }

func joinTransfer(st *state, t entity.InternalTransfer) *entity.InternalTransfer {
	t.FromWarehouseName = warehouseName(st, t.FromWarehouseID)
	t.ToWarehouseName = warehouseName(st, t.ToWarehouseID)
	t.ProductName = productName(st, t.ProductID)
	return &t
}

func (r transferRepo) Create(_ context.Context, t *entity.InternalTransfer) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.transfers[t.ID]; ok {
			return domain.ErrDuplicate
		}
		st.transfers[t.ID] = *t
		return nil
	})
}

func (r transferRepo) GetByID(_ context.Context, storeID, id string) (out *entity.InternalTransfer, _ error) {
	r.v.read(func(st *state) {
		if t := getScoped(st.transfers, storeID, id, transferStore); t != nil {
			out = joinTransfer(st, *t)
		}
	})
	return out, nil
}

func (r transferRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.InternalTransfer, error) {
	return r.GetByID(ctx, storeID, id)
}

func (r transferRepo) Update(_ context.Context, t *entity.InternalTransfer) error {
	return r.v.write(func(st *state) error {
		return updateScoped(st.transfers, t.ID, t.StoreID, *t, transferStore)
	})
}

func (r transferRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		return deleteScoped(st.transfers, storeID, id, transferStore)
	})
}

func (r transferRepo) List(_ context.Context, f repository.TransferFilter) (out []*entity.InternalTransfer, total int, _ error) {
	r.v.read(func(st *state) {
		for _, t := range st.transfers {
			if t.StoreID != f.StoreID || !matches(string(f.Status), string(t.Status)) || !matches(f.ProductID, t.ProductID) {
				continue
			}
			if f.WarehouseID != "" && t.FromWarehouseID != f.WarehouseID && t.ToWarehouseID != f.WarehouseID {
				continue
			}
			if !f.DateRange.Contains(t.TransferDate) {
				continue
			}
			out = append(out, joinTransfer(st, t))
		}
		newestFirst(out, func(t *entity.InternalTransfer) time.Time { return t.CreatedAt }, func(t *entity.InternalTransfer) string { return t.ID })
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}

type adjustmentRepo struct{ v view }

func adjustmentStore(a entity.StockAdjustment) string { return a.StoreID }

func joinAdjustment(st *state, a entity.StockAdjustment) *entity.StockAdjustment {
	a.WarehouseName = warehouseName(st, a.WarehouseID)
	a.ProductName = productName(st, a.ProductID)
	return &a
}

func (r adjustmentRepo) Create(_ context.Context, a *entity.StockAdjustment) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.adjustments[a.ID]; ok {
			return domain.ErrDuplicate
		}
		st.adjustments[a.ID] = *a
		return nil
	})
}

func (r adjustmentRepo) GetByID(_ context.Context, storeID, id string) (out *entity.StockAdjustment, _ error) {
	r.v.read(func(st *state) {
		if a := getScoped(st.adjustments, storeID, id, adjustmentStore); a != nil {
			out = joinAdjustment(st, *a)
		}
	})
	return out, nil
}

func (r adjustmentRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockAdjustment, error) {
	return r.GetByID(ctx, storeID, id)
}

func (r adjustmentRepo) Update(_ context.Context, a *entity.StockAdjustment) error {
	return r.v.write(func(st *state) error {
		return updateScoped(st.adjustments, a.ID, a.StoreID, *a, adjustmentStore)
	})
}

func (r adjustmentRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		return deleteScoped(st.adjustments, storeID, id, adjustmentStore)
	})
}

func (r adjustmentRepo) List(_ context.Context, f repository.AdjustmentFilter) (out []*entity.StockAdjustment, total int, _ error) {
	r.v.read(func(st *state) {
		for _, a := range st.adjustments {
			if a.StoreID != f.StoreID || !matches(string(f.Type), string(a.Type)) ||
				!matches(f.WarehouseID, a.WarehouseID) || !matches(f.ProductID, a.ProductID) {
				continue
			}
			if !f.DateRange.Contains(a.AdjustmentDate) {
				continue
			}
			out = append(out, joinAdjustment(st, a))
		}
		newestFirst(out, func(a *entity.StockAdjustment) time.Time { return a.CreatedAt }, func(a *entity.StockAdjustment) string { return a.ID })
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}

type lotRepo struct{ v view }

func lotStore(l entity.StockLot) string { return l.StoreID }

func joinLot(st *state, l entity.StockLot) *entity.StockLot {
	l.WarehouseName = warehouseName(st, l.WarehouseID)
	l.SupplierName = st.suppliers[l.SupplierID].Name
	l.ProductName = productName(st, l.ProductID)
	return &l
}

func (r lotRepo) Create(_ context.Context, l *entity.StockLot) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.lots[l.ID]; ok {
			return domain.ErrDuplicate
		}
		st.lots[l.ID] = *l
		return nil
	})
}

func (r lotRepo) GetByID(_ context.Context, storeID, id string) (out *entity.StockLot, _ error) {
	r.v.read(func(st *state) {
		if l := getScoped(st.lots, storeID, id, lotStore); l != nil {
			out = joinLot(st, *l)
		}
	})
	return out, nil
}

func (r lotRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockLot, error) {
	return r.GetByID(ctx, storeID, id)
}

func (r lotRepo) Update(_ context.Context, l *entity.StockLot) error {
	return r.v.write(func(st *state) error {
		return updateScoped(st.lots, l.ID, l.StoreID, *l, lotStore)
	})
}

func (r lotRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		return deleteScoped(st.lots, storeID, id, lotStore)
	})
}

func (r lotRepo) List(_ context.Context, f repository.StockLotFilter) (out []*entity.StockLot, total int, _ error) {
	r.v.read(func(st *state) {
		for _, l := range st.lots {
			if l.StoreID != f.StoreID || !matches(string(f.Status), string(l.Status)) || !matches(f.WarehouseID, l.WarehouseID) ||
				!matches(f.SupplierID, l.SupplierID) || !matches(f.ProductID, l.ProductID) {
				continue
			}
			if !f.DateRange.Contains(l.PurchaseDate) {
				continue
			}
			out = append(out, joinLot(st, l))
		}
		newestFirst(out, func(l *entity.StockLot) time.Time { return l.CreatedAt }, func(l *entity.StockLot) string { return l.ID })
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}
