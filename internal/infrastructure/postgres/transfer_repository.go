package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo traslados entre bodegas sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferFrom = `FROM internal_transfers t
	JOIN warehouses wf ON wf.id = t.from_warehouse_id
	JOIN warehouses wt ON wt.id = t.to_warehouse_id
	JOIN products p ON p.id = t.product_id`

const transferSelect = `
	SELECT t.id, t.store_id, t.from_warehouse_id, t.to_warehouse_id, t.product_id, t.quantity, t.status,
	       t.reference_no, t.transfer_date, t.cost_for_transfer, t.notes, t.created_by, t.created_at, t.updated_at,
	       wf.name, wt.name, p.name
	` + transferFrom

func scanTransfer(row interface{ Scan(...any) error }, t *entity.InternalTransfer) error {
	var createdBy *string
	if err := row.Scan(
		&t.ID, &t.StoreID, &t.FromWarehouseID, &t.ToWarehouseID, &t.ProductID, &t.Quantity, &t.Status,
		&t.ReferenceNo, &t.TransferDate, &t.CostForTransfer, &t.Notes, &createdBy, &t.CreatedAt, &t.UpdatedAt,
		&t.FromWarehouseName, &t.ToWarehouseName, &t.ProductName,
	); err != nil {
		return err
	}
	t.CreatedBy = derefStr(createdBy)
	return nil
}

// Create persiste un traslado.
func (r *TransferRepo) Create(ctx context.Context, t *entity.InternalTransfer) error {
	query := `
		INSERT INTO internal_transfers (id, store_id, from_warehouse_id, to_warehouse_id, product_id, quantity, status,
		                                reference_no, transfer_date, cost_for_transfer, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.StoreID, t.FromWarehouseID, t.ToWarehouseID, t.ProductID, t.Quantity, t.Status,
		t.ReferenceNo, t.TransferDate, t.CostForTransfer, t.Notes, nullIfEmpty(t.CreatedBy), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert transfer", err)
	}
	return nil
}

// GetByID obtiene un traslado de la tienda con los nombres resueltos.
func (r *TransferRepo) GetByID(ctx context.Context, storeID, id string) (*entity.InternalTransfer, error) {
	var t entity.InternalTransfer
	if err := scanTransfer(r.q.QueryRow(ctx, transferSelect+` WHERE t.id = $1 AND t.store_id = $2`, id, storeID), &t); err != nil {
		return noRows[entity.InternalTransfer](nil, err, "get transfer")
	}
	return &t, nil
}

// GetForUpdate igual que GetByID pero bloquea la fila del traslado.
func (r *TransferRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.InternalTransfer, error) {
	var t entity.InternalTransfer
	query := transferSelect + ` WHERE t.id = $1 AND t.store_id = $2 FOR UPDATE OF t`
	if err := scanTransfer(r.q.QueryRow(ctx, query, id, storeID), &t); err != nil {
		return noRows[entity.InternalTransfer](nil, err, "get transfer for update")
	}
	return &t, nil
}

// Update guarda los campos editables del traslado.
func (r *TransferRepo) Update(ctx context.Context, t *entity.InternalTransfer) error {
	query := `
		UPDATE internal_transfers
		SET from_warehouse_id = $3, to_warehouse_id = $4, product_id = $5, quantity = $6, status = $7,
		    reference_no = $8, transfer_date = $9, cost_for_transfer = $10, notes = $11, updated_at = $12
		WHERE id = $1 AND store_id = $2`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.StoreID, t.FromWarehouseID, t.ToWarehouseID, t.ProductID, t.Quantity, t.Status,
		t.ReferenceNo, t.TransferDate, t.CostForTransfer, t.Notes, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("update transfer", err)
	}
	return affectedOne(tag)
}

// Delete elimina el documento; no revierte stock.
func (r *TransferRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM internal_transfers WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete transfer", err)
	}
	return affectedOne(tag)
}

// List lista traslados del más reciente al más antiguo.
func (r *TransferRepo) List(ctx context.Context, f repository.TransferFilter) ([]*entity.InternalTransfer, int, error) {
	w := &where{}
	w.add("t.store_id = $%d", f.StoreID)
	w.addIf("t.status = $%d", string(f.Status))
	w.addIf("(t.from_warehouse_id = $%[1]d OR t.to_warehouse_id = $%[1]d)", f.WarehouseID)
	w.addIf("t.product_id = $%d", f.ProductID)
	w.dates("t.transfer_date", f.DateRange)
	total, err := count(ctx, r.q, transferFrom, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, transferSelect+w.String()+` ORDER BY t.created_at DESC, t.id`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.InternalTransfer
	for rows.Next() {
		var t entity.InternalTransfer
		if err := scanTransfer(rows, &t); err != nil {
			return nil, 0, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}
