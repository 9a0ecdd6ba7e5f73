package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, store_id, sku, barcode, name, description, price, tax_rate, unit_id, product_group_id, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }, p *entity.Product) error {
	var barcode, unitID, groupID *string
	if err := row.Scan(
		&p.ID, &p.StoreID, &p.SKU, &barcode, &p.Name, &p.Description, &p.Price, &p.TaxRate,
		&unitID, &groupID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	p.Barcode, p.UnitID, p.ProductGroupID = derefStr(barcode), derefStr(unitID), derefStr(groupID)
	return nil
}

// Create persiste un producto. SKU o código de barras repetido en la tienda → ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.StoreID, p.SKU, nullIfEmpty(p.Barcode), p.Name, p.Description, p.Price, p.TaxRate,
		nullIfEmpty(p.UnitID), nullIfEmpty(p.ProductGroupID), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto de la tienda.
func (r *ProductRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
}

// GetBySKU obtiene un producto por SKU dentro de la tienda.
func (r *ProductRepo) GetBySKU(ctx context.Context, storeID, sku string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1 AND store_id = $2`, sku, storeID)
}

func (r *ProductRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, args...), &p); err != nil {
		return noRows[entity.Product](nil, err, "get product")
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $3, barcode = $4, name = $5, description = $6, price = $7, tax_rate = $8,
		    unit_id = $9, product_group_id = $10, updated_at = $11
		WHERE id = $1 AND store_id = $2`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.StoreID, p.SKU, nullIfEmpty(p.Barcode), p.Name, p.Description, p.Price, p.TaxRate,
		nullIfEmpty(p.UnitID), nullIfEmpty(p.ProductGroupID), p.UpdatedAt,
	)
	if err != nil {
		return writeErr("update product", err)
	}
	return affectedOne(tag)
}

// Delete elimina un producto. Con stock o documentos asociados → ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete product", err)
	}
	return affectedOne(tag)
}

// List lista productos por nombre; Search busca en nombre, SKU y código de barras.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	w.addIf("product_group_id = $%d", f.ProductGroupID)
	if f.Search != "" {
		w.add("(name ILIKE $%[1]d OR sku ILIKE $%[1]d OR barcode ILIKE $%[1]d)", likePattern(f.Search))
	}
	const from = "FROM products"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}
