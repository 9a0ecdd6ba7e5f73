package memory

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

type invoiceRepo struct{ v view }

func joinInvoice(st *state, inv entity.Invoice) *entity.Invoice {
	c := st.customers[inv.CustomerID]
	inv.CustomerName, inv.CustomerTaxID = c.Name, c.TaxID
	return &inv
}

func (r invoiceRepo) Create(_ context.Context, inv *entity.Invoice, details []*entity.InvoiceDetail) error {
	return r.v.write(func(st *state) error {
		for _, cur := range st.invoices {
			if cur.StoreID == inv.StoreID && cur.Prefix == inv.Prefix && cur.Number == inv.Number {
				return domain.ErrDuplicate
			}
		}
		st.invoices[inv.ID] = *inv
		rows := make([]entity.InvoiceDetail, 0, len(details))
		for _, d := range details {
			rows = append(rows, *d)
		}
		st.details[inv.ID] = rows
		return nil
	})
}

func (r invoiceRepo) GetByID(_ context.Context, storeID, id string) (inv *entity.Invoice, details []*entity.InvoiceDetail, _ error) {
	r.v.read(func(st *state) {
		cur, ok := st.invoices[id]
		if !ok || cur.StoreID != storeID {
			return
		}
		inv = joinInvoice(st, cur)
		for _, d := range st.details[id] {
			p := st.products[d.ProductID]
			d.ProductName, d.ProductSKU = p.Name, p.SKU
			details = append(details, ptr(d))
		}
	})
	return inv, details, nil
}

// NextNumber = mayor consecutivo numérico del prefijo en la tienda + 1.
func (r invoiceRepo) NextNumber(_ context.Context, storeID, prefix string) (next int64, _ error) {
	r.v.read(func(st *state) {
		for _, inv := range st.invoices {
			if inv.StoreID != storeID || inv.Prefix != prefix {
				continue
			}
			if n, err := strconv.ParseInt(inv.Number, 10, 64); err == nil && n > next {
				next = n
			}
		}
	})
	return next + 1, nil
}

func (r invoiceRepo) List(_ context.Context, f repository.InvoiceFilter) (out []*entity.Invoice, total int, _ error) {
	r.v.read(func(st *state) {
		for _, inv := range st.invoices {
			if inv.StoreID != f.StoreID || !matches(f.CustomerID, inv.CustomerID) || !f.DateRange.Contains(inv.Date) {
				continue
			}
			out = append(out, joinInvoice(st, inv))
		}
		newestFirst(out, func(i *entity.Invoice) time.Time { return i.CreatedAt }, func(i *entity.Invoice) string { return i.ID })
		total = len(out)
		out = paginate(out, f.Page)
	})
	return out, total, nil
}
