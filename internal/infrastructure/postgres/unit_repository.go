package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo unidades de medida sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, store_id, name, short_name, created_at, updated_at`

func scanUnit(row interface{ Scan(...any) error }, u *entity.Unit) error {
	return row.Scan(&u.ID, &u.StoreID, &u.Name, &u.ShortName, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UnitRepo) Create(ctx context.Context, u *entity.Unit) error {
	query := `INSERT INTO units (` + unitColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, u.ID, u.StoreID, u.Name, u.ShortName, u.CreatedAt, u.UpdatedAt); err != nil {
		return writeErr("insert unit", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Unit, error) {
	var u entity.Unit
	err := scanUnit(r.q.QueryRow(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1 AND store_id = $2`, id, storeID), &u)
	if err != nil {
		return noRows[entity.Unit](nil, err, "get unit")
	}
	return &u, nil
}

func (r *UnitRepo) Update(ctx context.Context, u *entity.Unit) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE units SET name = $3, short_name = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2`,
		u.ID, u.StoreID, u.Name, u.ShortName, u.UpdatedAt)
	if err != nil {
		return writeErr("update unit", err)
	}
	return affectedOne(tag)
}

func (r *UnitRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete unit", err)
	}
	return affectedOne(tag)
}

func (r *UnitRepo) List(ctx context.Context, f repository.CatalogFilter) ([]*entity.Unit, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	if f.Search != "" {
		w.add("name ILIKE $%d", likePattern(f.Search))
	}
	const from = "FROM units"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+unitColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := scanUnit(rows, &u); err != nil {
			return nil, 0, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}
