package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockSelect = `
	SELECT s.id, s.store_id, s.product_id, s.warehouse_id, s.quantity, s.avg_purchase_price,
	       s.created_at, s.updated_at, p.name, p.sku, w.name
	FROM stock s
	JOIN products p ON p.id = s.product_id
	JOIN warehouses w ON w.id = s.warehouse_id`

func scanStock(row interface{ Scan(...any) error }, s *entity.StockRecord) error {
	return row.Scan(
		&s.ID, &s.StoreID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.AvgPurchasePrice,
		&s.CreatedAt, &s.UpdatedAt, &s.ProductName, &s.ProductSKU, &s.WarehouseName,
	)
}

// Get obtiene el stock actual de un producto en una bodega; nil si no hay registro.
func (r *StockRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := scanStock(r.q.QueryRow(ctx, stockSelect+` WHERE s.product_id = $1 AND s.warehouse_id = $2`, productID, warehouseID), &s)
	if err != nil {
		return noRows[entity.StockRecord](nil, err, "get stock")
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.StockRecord, error) {
	var s entity.StockRecord
	query := stockSelect + ` WHERE s.product_id = $1 AND s.warehouse_id = $2 FOR UPDATE OF s`
	if err := scanStock(r.q.QueryRow(ctx, query, productID, warehouseID), &s); err != nil {
		return noRows[entity.StockRecord](nil, err, "get stock for update")
	}
	return &s, nil
}

// Create inserta el registro; si otra transacción ya lo creó devuelve ErrConflict.
func (r *StockRepo) Create(ctx context.Context, s *entity.StockRecord) error {
	query := `
		INSERT INTO stock (id, store_id, product_id, warehouse_id, quantity, avg_purchase_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.StoreID, s.ProductID, s.WarehouseID, s.Quantity, s.AvgPurchasePrice, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert stock: %w", domain.ErrConflict)
		}
		return writeErr("insert stock", err)
	}
	return nil
}

// Update guarda cantidad y costo promedio.
func (r *StockRepo) Update(ctx context.Context, s *entity.StockRecord) error {
	query := `
		UPDATE stock SET quantity = $3, avg_purchase_price = $4, updated_at = $5
		WHERE product_id = $1 AND warehouse_id = $2`
	tag, err := r.q.Exec(ctx, query, s.ProductID, s.WarehouseID, s.Quantity, s.AvgPurchasePrice, s.UpdatedAt)
	if err != nil {
		return writeErr("update stock", err)
	}
	return affectedOne(tag)
}

// List lista niveles de stock ordenados por bodega y producto.
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter) ([]*entity.StockRecord, int, error) {
	w := &where{}
	w.add("s.store_id = $%d", f.StoreID)
	w.addIf("s.warehouse_id = $%d", f.WarehouseID)
	w.addIf("s.product_id = $%d", f.ProductID)
	if f.LowStockThreshold != nil {
		w.add("s.quantity <= $%d", *f.LowStockThreshold)
	}
	const from = `FROM stock s
	JOIN products p ON p.id = s.product_id
	JOIN warehouses w ON w.id = s.warehouse_id`
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, stockSelect+w.String()+` ORDER BY w.name, p.name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := scanStock(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}
