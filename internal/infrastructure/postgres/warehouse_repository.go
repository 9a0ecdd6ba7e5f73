package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, store_id, name, address, created_at, updated_at`

func scanWarehouse(row interface{ Scan(...any) error }, w *entity.Warehouse) error {
	return row.Scan(&w.ID, &w.StoreID, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt)
}

// Create persiste una nueva bodega. Nombre repetido en la tienda → ErrDuplicate.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `INSERT INTO warehouses (` + warehouseColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, w.ID, w.StoreID, w.Name, w.Address, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return writeErr("insert warehouse", err)
	}
	return nil
}

// GetByID obtiene una bodega de la tienda.
func (r *WarehouseRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1 AND store_id = $2`
	var w entity.Warehouse
	if err := scanWarehouse(r.q.QueryRow(ctx, query, id, storeID), &w); err != nil {
		return noRows[entity.Warehouse](nil, err, "get warehouse")
	}
	return &w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, address = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2`
	tag, err := r.q.Exec(ctx, query, w.ID, w.StoreID, w.Name, w.Address, w.UpdatedAt)
	if err != nil {
		return writeErr("update warehouse", err)
	}
	return affectedOne(tag)
}

// Delete elimina una bodega. Con documentos o stock asociados → ErrConflict.
func (r *WarehouseRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete warehouse", err)
	}
	return affectedOne(tag)
}

// List lista bodegas de la tienda por nombre.
func (r *WarehouseRepo) List(ctx context.Context, f repository.CatalogFilter) ([]*entity.Warehouse, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	if f.Search != "" {
		w.add("name ILIKE $%d", likePattern(f.Search))
	}
	const from = "FROM warehouses"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+warehouseColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var wh entity.Warehouse
		if err := scanWarehouse(rows, &wh); err != nil {
			return nil, 0, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &wh)
	}
	return list, total, rows.Err()
}
