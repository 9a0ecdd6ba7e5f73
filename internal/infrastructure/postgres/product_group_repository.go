package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ProductGroupRepository = (*ProductGroupRepo)(nil)

// ProductGroupRepo grupos de productos sobre PostgreSQL.
type ProductGroupRepo struct {
	q Querier
}

func NewProductGroupRepository(q Querier) *ProductGroupRepo {
	return &ProductGroupRepo{q: q}
}

const groupColumns = `id, store_id, name, description, created_at, updated_at`

func scanGroup(row interface{ Scan(...any) error }, g *entity.ProductGroup) error {
	return row.Scan(&g.ID, &g.StoreID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
}

func (r *ProductGroupRepo) Create(ctx context.Context, g *entity.ProductGroup) error {
	query := `INSERT INTO product_groups (` + groupColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, g.ID, g.StoreID, g.Name, g.Description, g.CreatedAt, g.UpdatedAt); err != nil {
		return writeErr("insert product group", err)
	}
	return nil
}

func (r *ProductGroupRepo) GetByID(ctx context.Context, storeID, id string) (*entity.ProductGroup, error) {
	var g entity.ProductGroup
	err := scanGroup(r.q.QueryRow(ctx, `SELECT `+groupColumns+` FROM product_groups WHERE id = $1 AND store_id = $2`, id, storeID), &g)
	if err != nil {
		return noRows[entity.ProductGroup](nil, err, "get product group")
	}
	return &g, nil
}

func (r *ProductGroupRepo) Update(ctx context.Context, g *entity.ProductGroup) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE product_groups SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2`,
		g.ID, g.StoreID, g.Name, g.Description, g.UpdatedAt)
	if err != nil {
		return writeErr("update product group", err)
	}
	return affectedOne(tag)
}

func (r *ProductGroupRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM product_groups WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete product group", err)
	}
	return affectedOne(tag)
}

func (r *ProductGroupRepo) List(ctx context.Context, f repository.CatalogFilter) ([]*entity.ProductGroup, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	if f.Search != "" {
		w.add("name ILIKE $%d", likePattern(f.Search))
	}
	const from = "FROM product_groups"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+groupColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list product groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductGroup
	for rows.Next() {
		var g entity.ProductGroup
		if err := scanGroup(rows, &g); err != nil {
			return nil, 0, fmt.Errorf("scan product group: %w", err)
		}
		list = append(list, &g)
	}
	return list, total, rows.Err()
}
