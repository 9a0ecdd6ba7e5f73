package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

type storeRepo struct{ v view }

func (r storeRepo) Create(_ context.Context, s *entity.Store) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.stores[s.ID]; ok {
			return domain.ErrDuplicate
		}
		st.stores[s.ID] = *s
		return nil
	})
}

func (r storeRepo) GetByID(_ context.Context, id string) (out *entity.Store, _ error) {
	r.v.read(func(st *state) {
		if s, ok := st.stores[id]; ok {
			out = &s
		}
	})
	return out, nil
}

type userRepo struct{ v view }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	return r.v.write(func(st *state) error {
		for _, cur := range st.users {
			if strings.EqualFold(cur.Email, u.Email) {
				return domain.ErrEmailAlreadyExists
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r userRepo) GetByID(_ context.Context, id string) (out *entity.User, _ error) {
	r.v.read(func(st *state) {
		if u, ok := st.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (out *entity.User, _ error) {
	r.v.read(func(st *state) {
		for _, u := range st.users {
			if strings.EqualFold(u.Email, email) {
				out = ptr(u)
				return
			}
		}
	})
	return out, nil
}

// listCatalog filtra por tienda y nombre, ordena por nombre y pagina.
func listCatalog[T any](items map[string]T, f repository.CatalogFilter, store, name func(T) string) ([]*T, int) {
	var out []*T
	for _, it := range items {
		if store(it) != f.StoreID {
			continue
		}
		if f.Search != "" && !containsFold(name(it), f.Search) {
			continue
		}
		out = append(out, ptr(it))
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(name(*out[i])) < strings.ToLower(name(*out[j])) })
	return paginate(out, f.Page), len(out)
}

// getScoped devuelve una copia del registro si existe y pertenece a la tienda.
func getScoped[T any](items map[string]T, storeID, id string, store func(T) string) *T {
	it, ok := items[id]
	if !ok || store(it) != storeID {
		return nil
	}
	return &it
}

// updateScoped reemplaza el registro si existe en la tienda.
func updateScoped[T any](items map[string]T, id, storeID string, v T, store func(T) string) error {
	cur, ok := items[id]
	if !ok || store(cur) != storeID {
		return domain.ErrNotFound
	}
	items[id] = v
	return nil
}

func deleteScoped[T any](items map[string]T, storeID, id string, store func(T) string) error {
	cur, ok := items[id]
	if !ok || store(cur) != storeID {
		return domain.ErrNotFound
	}
	delete(items, id)
	return nil
}

type warehouseRepo struct{ v view }

func warehouseStore(w entity.Warehouse) string { return w.StoreID }

func (r warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.v.write(func(st *state) error {
		if warehouseNameTaken(st, w) {
			return domain.ErrDuplicate
		}
		st.warehouses[w.ID] = *w
		return nil
	})
}

func (r warehouseRepo) GetByID(_ context.Context, storeID, id string) (out *entity.Warehouse, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.warehouses, storeID, id, warehouseStore) })
	return out, nil
}

func (r warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	return r.v.write(func(st *state) error {
		if warehouseNameTaken(st, w) {
			return domain.ErrDuplicate
		}
		return updateScoped(st.warehouses, w.ID, w.StoreID, *w, warehouseStore)
	})
}

func (r warehouseRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		if warehouseReferenced(st, id) {
			return domain.ErrConflict
		}
		return deleteScoped(st.warehouses, storeID, id, warehouseStore)
	})
}

func (r warehouseRepo) List(_ context.Context, f repository.CatalogFilter) (out []*entity.Warehouse, total int, _ error) {
	r.v.read(func(st *state) {
		out, total = listCatalog(st.warehouses, f, warehouseStore, func(w entity.Warehouse) string { return w.Name })
	})
	return out, total, nil
}

func warehouseNameTaken(st *state, w *entity.Warehouse) bool {
	for _, cur := range st.warehouses {
		if cur.ID != w.ID && cur.StoreID == w.StoreID && strings.EqualFold(cur.Name, w.Name) {
			return true
		}
	}
	return false
}

func warehouseReferenced(st *state, id string) bool {
	for _, s := range st.stock {
		if s.WarehouseID == id {
			return true
		}
	}
	for _, t := range st.transfers {
		if t.FromWarehouseID == id || t.ToWarehouseID == id {
			return true
		}
	}
	for _, a := range st.adjustments {
		if a.WarehouseID == id {
			return true
		}
	}
	for _, l := range st.lots {
		if l.WarehouseID == id {
			return true
		}
	}
	for _, i := range st.invoices {
		if i.WarehouseID == id {
			return true
		}
	}
	return false
}

type unitRepo struct{ v view }

func unitStore(u entity.Unit) string { return u.StoreID }

func (r unitRepo) Create(_ context.Context, u *entity.Unit) error {
	return r.v.write(func(st *state) error {
		if unitShortNameTaken(st, u) {
			return domain.ErrDuplicate
		}
		st.units[u.ID] = *u
		return nil
	})
}

func (r unitRepo) GetByID(_ context.Context, storeID, id string) (out *entity.Unit, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.units, storeID, id, unitStore) })
	return out, nil
}

func (r unitRepo) Update(_ context.Context, u *entity.Unit) error {
	return r.v.write(func(st *state) error {
		if unitShortNameTaken(st, u) {
			return domain.ErrDuplicate
		}
		return updateScoped(st.units, u.ID, u.StoreID, *u, unitStore)
	})
}

func (r unitRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		for _, p := range st.products {
			if p.UnitID == id {
				return domain.ErrConflict
			}
		}
		return deleteScoped(st.units, storeID, id, unitStore)
	})
}

func (r unitRepo) List(_ context.Context, f repository.CatalogFilter) (out []*entity.Unit, total int, _ error) {
	r.v.read(func(st *state) {
		out, total = listCatalog(st.units, f, unitStore, func(u entity.Unit) string { return u.Name })
	})
	return out, total, nil
}

func unitShortNameTaken(st *state, u *entity.Unit) bool {
	for _, cur := range st.units {
		if cur.ID != u.ID && cur.StoreID == u.StoreID && strings.EqualFold(cur.ShortName, u.ShortName) {
			return true
		}
	}
	return false
}

type groupRepo struct{ v view }

func groupStore(g entity.ProductGroup) string { return g.StoreID }

func (r groupRepo) Create(_ context.Context, g *entity.ProductGroup) error {
	return r.v.write(func(st *state) error {
		st.groups[g.ID] = *g
		return nil
	})
}

func (r groupRepo) GetByID(_ context.Context, storeID, id string) (out *entity.ProductGroup, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.groups, storeID, id, groupStore) })
	return out, nil
}

func (r groupRepo) Update(_ context.Context, g *entity.ProductGroup) error {
	return r.v.write(func(st *state) error {
		return updateScoped(st.groups, g.ID, g.StoreID, *g, groupStore)
	})
}

func (r groupRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		for _, p := range st.products {
			if p.ProductGroupID == id {
				return domain.ErrConflict
			}
		}
		return deleteScoped(st.groups, storeID, id, groupStore)
	})
}

func (r groupRepo) List(_ context.Context, f repository.CatalogFilter) (out []*entity.ProductGroup, total int, _ error) {
	r.v.read(func(st *state) {
		out, total = listCatalog(st.groups, f, groupStore, func(g entity.ProductGroup) string { return g.Name })
	})
	return out, total, nil
}

type productRepo struct{ v view }

func productStore(p entity.Product) string { return p.StoreID }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.v.write(func(st *state) error {
		if productCodeTaken(st, p) {
			return domain.ErrDuplicate
		}
		st.products[p.ID] = *p
		return nil
	})
}

func (r productRepo) GetByID(_ context.Context, storeID, id string) (out *entity.Product, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.products, storeID, id, productStore) })
	return out, nil
}

func (r productRepo) GetBySKU(_ context.Context, storeID, sku string) (out *entity.Product, _ error) {
	r.v.read(func(st *state) {
		for _, p := range st.products {
			if p.StoreID == storeID && p.SKU == sku {
				out = ptr(p)
				return
			}
		}
	})
	return out, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	return r.v.write(func(st *state) error {
		if productCodeTaken(st, p) {
			return domain.ErrDuplicate
		}
		return updateScoped(st.products, p.ID, p.StoreID, *p, productStore)
	})
}

func (r productRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		if productReferenced(st, id) {
			return domain.ErrConflict
		}
		return deleteScoped(st.products, storeID, id, productStore)
	})
}

func (r productRepo) List(_ context.Context, f repository.ProductFilter) (out []*entity.Product, total int, _ error) {
	r.v.read(func(st *state) {
		for _, p := range st.products {
			if p.StoreID != f.StoreID || !matches(f.ProductGroupID, p.ProductGroupID) {
				continue
			}
			if f.Search != "" && !containsFold(p.Name, f.Search) && !containsFold(p.SKU, f.Search) && !containsFold(p.Barcode, f.Search) {
				continue
			}
			out = append(out, ptr(p))
		}
		sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}

func productCodeTaken(st *state, p *entity.Product) bool {
	for _, cur := range st.products {
		if cur.ID == p.ID || cur.StoreID != p.StoreID {
			continue
		}
		if cur.SKU == p.SKU || (p.Barcode != "" && cur.Barcode == p.Barcode) {
			return true
		}
	}
	return false
}

func productReferenced(st *state, id string) bool {
	for _, s := range st.stock {
		if s.ProductID == id {
			return true
		}
	}
	for _, t := range st.transfers {
		if t.ProductID == id {
			return true
		}
	}
	for _, a := range st.adjustments {
		if a.ProductID == id {
			return true
		}
	}
	for _, l := range st.lots {
		if l.ProductID == id {
			return true
		}
	}
	for _, ds := range st.details {
		for _, d := range ds {
			if d.ProductID == id {
				return true
			}
		}
	}
	return false
}

type supplierRepo struct{ v view }

func supplierStore(s entity.Supplier) string { return s.StoreID }

func (r supplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	return r.v.write(func(st *state) error {
		st.suppliers[s.ID] = *s
		return nil
	})
}

func (r supplierRepo) GetByID(_ context.Context, storeID, id string) (out *entity.Supplier, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.suppliers, storeID, id, supplierStore) })
	return out, nil
}

func (r supplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	return r.v.write(func(st *state) error {
		return updateScoped(st.suppliers, s.ID, s.StoreID, *s, supplierStore)
	})
}

func (r supplierRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		for _, l := range st.lots {
			if l.SupplierID == id {
				return domain.ErrConflict
			}
		}
		return deleteScoped(st.suppliers, storeID, id, supplierStore)
	})
}

func (r supplierRepo) List(_ context.Context, f repository.CatalogFilter) (out []*entity.Supplier, total int, _ error) {
	r.v.read(func(st *state) {
		out, total = listCatalog(st.suppliers, f, supplierStore, func(s entity.Supplier) string { return s.Name })
	})
	return out, total, nil
}

type customerRepo struct{ v view }

func customerStore(c entity.Customer) string { return c.StoreID }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	return r.v.write(func(st *state) error {
		if customerTaxIDTaken(st, c) {
			return domain.ErrDuplicate
		}
		st.customers[c.ID] = *c
		return nil
	})
}

func (r customerRepo) GetByID(_ context.Context, storeID, id string) (out *entity.Customer, _ error) {
	r.v.read(func(st *state) { out = getScoped(st.customers, storeID, id, customerStore) })
	return out, nil
}

func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	return r.v.write(func(st *state) error {
		if customerTaxIDTaken(st, c) {
			return domain.ErrDuplicate
		}
		return updateScoped(st.customers, c.ID, c.StoreID, *c, customerStore)
	})
}

func (r customerRepo) Delete(_ context.Context, storeID, id string) error {
	return r.v.write(func(st *state) error {
		for _, i := range st.invoices {
			if i.CustomerID == id {
				return domain.ErrConflict
			}
		}
		return deleteScoped(st.customers, storeID, id, customerStore)
	})
}

func (r customerRepo) List(_ context.Context, f repository.CatalogFilter) (out []*entity.Customer, total int, _ error) {
	r.v.read(func(st *state) {
		out, total = listCatalog(st.customers, f, customerStore, func(c entity.Customer) string { return c.Name })
	})
	return out, total, nil
}

func customerTaxIDTaken(st *state, c *entity.Customer) bool {
	for _, cur := range st.customers {
		if cur.ID != c.ID && cur.StoreID == c.StoreID && cur.TaxID == c.TaxID {
			return true
		}
	}
	return false
}
