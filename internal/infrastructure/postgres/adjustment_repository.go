package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo ajustes de inventario sobre PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

const adjustmentFrom = `FROM stock_adjustments a
	JOIN warehouses w ON w.id = a.warehouse_id
	JOIN products p ON p.id = a.product_id`

const adjustmentSelect = `
	SELECT a.id, a.store_id, a.warehouse_id, a.product_id, a.quantity, a.type, a.adjustment_date,
	       a.reference_no, a.notes, a.created_by, a.created_at, a.updated_at, w.name, p.name
	` + adjustmentFrom

func scanAdjustment(row interface{ Scan(...any) error }, a *entity.StockAdjustment) error {
	var createdBy *string
	if err := row.Scan(
		&a.ID, &a.StoreID, &a.WarehouseID, &a.ProductID, &a.Quantity, &a.Type, &a.AdjustmentDate,
		&a.ReferenceNo, &a.Notes, &createdBy, &a.CreatedAt, &a.UpdatedAt, &a.WarehouseName, &a.ProductName,
	); err != nil {
		return err
	}
	a.CreatedBy = derefStr(createdBy)
	return nil
}

func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, store_id, warehouse_id, product_id, quantity, type, adjustment_date,
		                               reference_no, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.StoreID, a.WarehouseID, a.ProductID, a.Quantity, a.Type, a.AdjustmentDate,
		a.ReferenceNo, a.Notes, nullIfEmpty(a.CreatedBy), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert adjustment", err)
	}
	return nil
}

func (r *AdjustmentRepo) GetByID(ctx context.Context, storeID, id string) (*entity.StockAdjustment, error) {
	return r.findOne(ctx, adjustmentSelect+` WHERE a.id = $1 AND a.store_id = $2`, id, storeID)
}

func (r *AdjustmentRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockAdjustment, error) {
	return r.findOne(ctx, adjustmentSelect+` WHERE a.id = $1 AND a.store_id = $2 FOR UPDATE OF a`, id, storeID)
}

func (r *AdjustmentRepo) findOne(ctx context.Context, query string, args ...any) (*entity.StockAdjustment, error) {
	var a entity.StockAdjustment
	if err := scanAdjustment(r.q.QueryRow(ctx, query, args...), &a); err != nil {
		return noRows[entity.StockAdjustment](nil, err, "get adjustment")
	}
	return &a, nil
}

func (r *AdjustmentRepo) Update(ctx context.Context, a *entity.StockAdjustment) error {
	query := `
		UPDATE stock_adjustments
		SET warehouse_id = $3, product_id = $4, quantity = $5, type = $6, adjustment_date = $7,
		    reference_no = $8, notes = $9, updated_at = $10
		WHERE id = $1 AND store_id = $2`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.StoreID, a.WarehouseID, a.ProductID, a.Quantity, a.Type, a.AdjustmentDate,
		a.ReferenceNo, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update adjustment", err)
	}
	return affectedOne(tag)
}

func (r *AdjustmentRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_adjustments WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete adjustment", err)
	}
	return affectedOne(tag)
}

func (r *AdjustmentRepo) List(ctx context.Context, f repository.AdjustmentFilter) ([]*entity.StockAdjustment, int, error) {
	w := &where{}
	w.add("a.store_id = $%d", f.StoreID)
	w.addIf("a.type = $%d", string(f.Type))
	w.addIf("a.warehouse_id = $%d", f.WarehouseID)
	w.addIf("a.product_id = $%d", f.ProductID)
	w.dates("a.adjustment_date", f.DateRange)
	total, err := count(ctx, r.q, adjustmentFrom, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, adjustmentSelect+w.String()+` ORDER BY a.created_at DESC, a.id`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := scanAdjustment(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}
