package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceFrom = `FROM invoices i JOIN customers c ON c.id = i.customer_id`

const invoiceSelect = `
	SELECT i.id, i.store_id, i.customer_id, i.warehouse_id, i.prefix, i.number, i.date,
	       i.net_total, i.tax_total, i.grand_total, i.status, i.notes, i.created_by, i.created_at, i.updated_at,
	       c.name, c.tax_id
	` + invoiceFrom

func scanInvoice(row interface{ Scan(...any) error }, inv *entity.Invoice) error {
	var createdBy *string
	if err := row.Scan(
		&inv.ID, &inv.StoreID, &inv.CustomerID, &inv.WarehouseID, &inv.Prefix, &inv.Number, &inv.Date,
		&inv.NetTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Status, &inv.Notes, &createdBy, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.CustomerName, &inv.CustomerTaxID,
	); err != nil {
		return err
	}
	inv.CreatedBy = derefStr(createdBy)
	return nil
}

// Create persiste la cabecera y sus líneas. Debe ejecutarse dentro de la transacción de emisión.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice, details []*entity.InvoiceDetail) error {
	query := `
		INSERT INTO invoices (id, store_id, customer_id, warehouse_id, prefix, number, date,
		                      net_total, tax_total, grand_total, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.StoreID, inv.CustomerID, inv.WarehouseID, inv.Prefix, inv.Number, inv.Date,
		inv.NetTotal, inv.TaxTotal, inv.GrandTotal, inv.Status, inv.Notes, nullIfEmpty(inv.CreatedBy), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert invoice", err)
	}
	for _, d := range details {
		if err := r.createDetail(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepo) createDetail(ctx context.Context, d *entity.InvoiceDetail) error {
	query := `
		INSERT INTO invoice_details (id, invoice_id, product_id, quantity, unit_price, tax_rate, subtotal, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, d.ID, d.InvoiceID, d.ProductID, d.Quantity, d.UnitPrice, d.TaxRate, d.Subtotal, d.TaxAmount)
	if err != nil {
		return writeErr("insert invoice detail", err)
	}
	return nil
}

// GetByID obtiene la factura de la tienda con su detalle; (nil, nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, storeID, id string) (*entity.Invoice, []*entity.InvoiceDetail, error) {
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(ctx, invoiceSelect+` WHERE i.id = $1 AND i.store_id = $2`, id, storeID), &inv); err != nil {
		found, err := noRows[entity.Invoice](nil, err, "get invoice")
		return found, nil, err
	}
	details, err := r.details(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &inv, details, nil
}

func (r *InvoiceRepo) details(ctx context.Context, invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT d.id, d.invoice_id, d.product_id, d.quantity, d.unit_price, d.tax_rate, d.subtotal, d.tax_amount, p.name, p.sku
		FROM invoice_details d JOIN products p ON p.id = d.product_id
		WHERE d.invoice_id = $1`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(
			&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.TaxRate, &d.Subtotal, &d.TaxAmount,
			&d.ProductName, &d.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// NextNumber = mayor consecutivo numérico del prefijo en la tienda + 1.
// La colisión entre emisiones concurrentes la resuelve el índice único (store_id, prefix, number).
func (r *InvoiceRepo) NextNumber(ctx context.Context, storeID, prefix string) (int64, error) {
	query := `
		SELECT COALESCE(MAX(number::bigint), 0) + 1
		FROM invoices
		WHERE store_id = $1 AND prefix = $2 AND number ~ '^[0-9]+$'`
	var next int64
	if err := r.q.QueryRow(ctx, query, storeID, prefix).Scan(&next); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return next, nil
}

// List lista facturas de la tienda, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, int, error) {
	w := &where{}
	w.add("i.store_id = $%d", f.StoreID)
	w.addIf("i.customer_id = $%d", f.CustomerID)
	w.dates("i.date", f.DateRange)
	total, err := count(ctx, r.q, invoiceFrom, w)
	if err != nil {
		return nil, 0, err
	}
	page, args := w.page(f.Page)
	rows, err := r.q.Query(ctx, invoiceSelect+w.String()+` ORDER BY i.created_at DESC, i.id`+page, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, total, rows.Err()
}
