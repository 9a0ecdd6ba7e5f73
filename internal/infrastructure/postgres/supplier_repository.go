package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, store_id, name, tax_id, email, phone, address, created_at, updated_at`

func scanSupplier(row interface{ Scan(...any) error }, s *entity.Supplier) error {
	return row.Scan(&s.ID, &s.StoreID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, s.ID, s.StoreID, s.Name, s.TaxID, s.Email, s.Phone, s.Address, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return writeErr("insert supplier", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1 AND store_id = $2`, id, storeID), &s)
	if err != nil {
		return noRows[entity.Supplier](nil, err, "get supplier")
	}
	return &s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE suppliers SET name = $3, tax_id = $4, email = $5, phone = $6, address = $7, updated_at = $8
		WHERE id = $1 AND store_id = $2`,
		s.ID, s.StoreID, s.Name, s.TaxID, s.Email, s.Phone, s.Address, s.UpdatedAt)
	if err != nil {
		return writeErr("update supplier", err)
	}
	return affectedOne(tag)
}

func (r *SupplierRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete supplier", err)
	}
	return affectedOne(tag)
}

func (r *SupplierRepo) List(ctx context.Context, f repository.CatalogFilter) ([]*entity.Supplier, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	if f.Search != "" {
		w.add("name ILIKE $%d", likePattern(f.Search))
	}
	const from = "FROM suppliers"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := scanSupplier(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}
