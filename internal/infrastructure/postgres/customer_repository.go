package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, store_id, name, tax_id, email, phone, address, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }, c *entity.Customer) error {
	return row.Scan(&c.ID, &c.StoreID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
}

// Create persiste un cliente. NIT repetido en la tienda → ErrDuplicate.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, c.ID, c.StoreID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeErr("insert customer", err)
	}
	return nil
}

// GetByID obtiene un cliente de la tienda.
func (r *CustomerRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1 AND store_id = $2`, id, storeID), &c)
	if err != nil {
		return noRows[entity.Customer](nil, err, "get customer")
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE customers SET name = $3, tax_id = $4, email = $5, phone = $6, address = $7, updated_at = $8
		WHERE id = $1 AND store_id = $2`,
		c.ID, c.StoreID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.UpdatedAt)
	if err != nil {
		return writeErr("update customer", err)
	}
	return affectedOne(tag)
}

// Delete elimina un cliente. Con facturas asociadas → ErrConflict.
func (r *CustomerRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return writeErr("delete customer", err)
	}
	return affectedOne(tag)
}

// List lista clientes; Search busca en nombre y NIT.
func (r *CustomerRepo) List(ctx context.Context, f repository.CatalogFilter) ([]*entity.Customer, int, error) {
	w := &where{}
	w.add("store_id = $%d", f.StoreID)
	if f.Search != "" {
		w.add("(name ILIKE $%[1]d OR tax_id ILIKE $%[1]d)", likePattern(f.Search))
	}
	const from = "FROM customers"
	total, err := count(ctx, r.q, from, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` `+from+w.String()+` ORDER BY name`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}
