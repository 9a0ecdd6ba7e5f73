package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo kardex sobre PostgreSQL (usable con pool o tx). Solo inserta y consulta.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, store_id, product_id, warehouse_id, type, quantity, unit_cost,
		                             balance_after, document_type, document_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.StoreID, m.ProductID, m.WarehouseID, m.Type, m.Quantity, m.UnitCost,
		m.BalanceAfter, m.DocumentType, m.DocumentID, nullIfEmpty(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return writeErr("insert stock movement", err)
	}
	return nil
}

// List devuelve el kardex del más reciente al más antiguo (orden de inserción).
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	w := &where{}
	w.add("m.store_id = $%d", f.StoreID)
	w.addIf("m.warehouse_id = $%d", f.WarehouseID)
	w.addIf("m.product_id = $%d", f.ProductID)
	w.addIf("m.type = $%d", f.Type)
	w.dates("m.created_at", f.DateRange)
	const from = `FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN warehouses w ON w.id = m.warehouse_id`
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	query := `
	SELECT m.id, m.store_id, m.product_id, m.warehouse_id, m.type, m.quantity, m.unit_cost, m.balance_after,
	       m.document_type, m.document_id, m.created_by, m.created_at, p.name, w.name
	` + from + w.String() + ` ORDER BY m.seq DESC` + page
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.StoreID, &m.ProductID, &m.WarehouseID, &m.Type, &m.Quantity, &m.UnitCost, &m.BalanceAfter,
			&m.DocumentType, &m.DocumentID, &createdBy, &m.CreatedAt, &m.ProductName, &m.WarehouseName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock movement: %w", err)
		}
		m.CreatedBy = derefStr(createdBy)
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
