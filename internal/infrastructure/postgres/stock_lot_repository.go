package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.StockLotRepository = (*StockLotRepo)(nil)

// StockLotRepo lotes de compra sobre PostgreSQL (usable con pool o tx).
type StockLotRepo struct {
	q Querier
}

// NewStockLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLotRepository(q Querier) *StockLotRepo {
	return &StockLotRepo{q: q}
}

const lotFrom = `FROM stock_lots l
	JOIN warehouses w ON w.id = l.warehouse_id
	JOIN suppliers s ON s.id = l.supplier_id
	JOIN products p ON p.id = l.product_id`

const lotSelect = `
	SELECT l.id, l.store_id, l.warehouse_id, l.supplier_id, l.product_id, l.lot_reference_no, l.quantity,
	       l.purchase_price, l.purchase_date, l.status, l.other_charges, l.discount, l.notes,
	       l.created_by, l.created_at, l.updated_at, w.name, s.name, p.name
	` + lotFrom

func scanLot(row interface{ Scan(...any) error }, l *entity.StockLot) error {
	var createdBy *string
	if err := row.Scan(
		&l.ID, &l.StoreID, &l.WarehouseID, &l.SupplierID, &l.ProductID, &l.LotReferenceNo, &l.Quantity,
		&l.PurchasePrice, &l.PurchaseDate, &l.Status, &l.OtherCharges, &l.Discount, &l.Notes,
		&createdBy, &l.CreatedAt, &l.UpdatedAt, &l.WarehouseName, &l.SupplierName, &l.ProductName,
	); err != nil {
		return err
	}
	l.CreatedBy = derefStr(createdBy)
	return nil
}

// Create persiste un lote.
func (r *StockLotRepo) Create(ctx context.Context, l *entity.StockLot) error {
	query := `
		INSERT INTO stock_lots (id, store_id, warehouse_id, supplier_id, product_id, lot_reference_no, quantity,
		                        purchase_price, purchase_date, status, other_charges, discount, notes,
		                        created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.StoreID, l.WarehouseID, l.SupplierID, l.ProductID, l.LotReferenceNo, l.Quantity,
		l.PurchasePrice, l.PurchaseDate, l.Status, l.OtherCharges, l.Discount, l.Notes,
		nullIfEmpty(l.CreatedBy), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert stock lot", err)
	}
	return nil
}

// GetByID obtiene un lote de la tienda con los nombres resueltos.
func (r *StockLotRepo) GetByID(ctx context.Context, storeID, id string) (*entity.StockLot, error) {
	var l entity.StockLot
	if err := scanLot(r.q.QueryRow(ctx, lotSelect+` WHERE l.id = $1 AND l.store_id = $2`, id, storeID), &l); err != nil {
		return noRows[entity.StockLot](nil, err, "get stock lot")
	}
	return &l, nil
}

// GetForUpdate igual que GetByID pero bloquea la fila del lote.
func (r *StockLotRepo) GetForUpdate(ctx context.Context, storeID, id string) (*entity.StockLot, error) {
	var l entity.StockLot
	query := lotSelect + ` WHERE l.id = $1 AND l.store_id = $2 FOR UPDATE OF l`
	if err := scanLot(r.q.QueryRow(ctx, query, id, storeID), &l); err != nil {
		return noRows[entity.StockLot](nil, err, "get stock lot for update")
	}
	return &l, nil
}

// Update guarda los campos editables del lote.
func (r *StockLotRepo) Update(ctx context.Context, l *entity.StockLot) error {
	query := `
		UPDATE stock_lots
		SET warehouse_id = $3, supplier_id = $4, product_id = $5, lot_reference_no = $6, quantity = $7,
		    purchase_price = $8, purchase_date = $9, status = $10, other_charges = $11, discount = $12,
		    notes = $13, updated_at = $14
		WHERE id = $1 AND store_id = $2`
	tag, err := r.q.Exec(ctx, query,
		l.ID, l.StoreID, l.WarehouseID, l.SupplierID, l.ProductID, l.LotReferenceNo, l.Quantity,
		l.PurchasePrice, l.PurchaseDate, l.Status, l.OtherCharges, l.Discount, l.Notes, l.UpdatedAt,
	)
	if err != nil {
		return writeErr("update stock lot", err)
	}
	return affectedOne(tag)
}

// Delete elimina el documento; no revierte stock.
func (r *StockLotRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_lots WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete stock lot", err)
	}
	return affectedOne(tag)
}

// List lista lotes del más reciente al más antiguo.
func (r *StockLotRepo) List(ctx context.Context, f repository.StockLotFilter) ([]*entity.StockLot, int, error) {
	w := &where{}
	w.add("l.store_id = $%d", f.StoreID)
	w.addIf("l.status = $%d", string(f.Status))
	w.addIf("l.warehouse_id = $%d", f.WarehouseID)
	w.addIf("l.supplier_id = $%d", f.SupplierID)
	w.addIf("l.product_id = $%d", f.ProductID)
	w.dates("l.purchase_date", f.DateRange)
	total, err := count(ctx, r.q, lotFrom, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, lotSelect+w.String()+` ORDER BY l.created_at DESC, l.id`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLot
	for rows.Next() {
		var l entity.StockLot
		if err := scanLot(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scan stock lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}
