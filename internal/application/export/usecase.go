// Package export genera las exportaciones tabulares (CSV) de stock, catálogo y documentos.
// Usan los mismos filtros que los listados, sin paginación y con tope dto.MaxExportRows.
package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// TableWriter serializa una tabla (implementado por infrastructure/csv).
type TableWriter interface {
	WriteTable(w io.Writer, header []string, rows [][]string) error
	ContentType() string
	Extension() string
}

const dateLayout = "2006-01-02"

var exportPage = repository.Page{Limit: dto.MaxExportRows}

// UseCase exportaciones por tienda.
type UseCase struct {
	repos  ports.Repos
	writer TableWriter
}

// NewUseCase construye el caso de uso.
func NewUseCase(repos ports.Repos, writer TableWriter) *UseCase {
	return &UseCase{repos: repos, writer: writer}
}

// ContentType del formato de exportación.
func (uc *UseCase) ContentType() string { return uc.writer.ContentType() }

// Filename nombre sugerido del adjunto: <name>_<fecha>.<ext>.
func (uc *UseCase) Filename(name string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, at.Format("20060102"), uc.writer.Extension())
}

// Stock niveles de stock.
func (uc *UseCase) Stock(ctx context.Context, storeID string, q dto.StockListQuery, w io.Writer) error {
	list, _, err := uc.repos.Stock().List(ctx, repository.StockFilter{
		StoreID:           storeID,
		WarehouseID:       q.WarehouseID,
		ProductID:         q.ProductID,
		LowStockThreshold: q.LowStockThreshold,
		Page:              exportPage,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			r.WarehouseName, r.ProductSKU, r.ProductName,
			itoa(r.Quantity), nullMoney(r.AvgPurchasePrice),
		})
	}
	return uc.writer.WriteTable(w, []string{"warehouse", "sku", "product", "quantity", "avg_purchase_price"}, rows)
}

// Products catálogo de productos.
func (uc *UseCase) Products(ctx context.Context, storeID string, q dto.ProductListQuery, w io.Writer) error {
	list, _, err := uc.repos.Products().List(ctx, repository.ProductFilter{
		StoreID:        storeID,
		Search:         q.Search,
		ProductGroupID: q.ProductGroupID,
		Page:           exportPage,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			p.SKU, p.Barcode, p.Name, p.Description,
			p.Price.StringFixed(2), p.TaxRate.String(),
		})
	}
	return uc.writer.WriteTable(w, []string{"sku", "barcode", "name", "description", "price", "tax_rate"}, rows)
}

// Transfers traslados entre bodegas.
func (uc *UseCase) Transfers(ctx context.Context, storeID string, q dto.TransferListQuery, w io.Writer) error {
	status := entity.TransferStatus(q.Status)
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, q.Status)
	}
	list, _, err := uc.repos.Transfers().List(ctx, repository.TransferFilter{
		StoreID:     storeID,
		Status:      status,
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		DateRange:   repository.DateRange{From: q.From, To: q.To},
		Page:        exportPage,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			t.TransferDate.Format(dateLayout), t.ReferenceNo, string(t.Status),
			t.FromWarehouseName, t.ToWarehouseName, t.ProductName,
			itoa(t.Quantity), nullMoney(t.CostForTransfer), t.Notes,
		})
	}
	return uc.writer.WriteTable(w, []string{
		"date", "reference_no", "status", "from_warehouse", "to_warehouse",
		"product", "quantity", "cost_for_transfer", "notes",
	}, rows)
}

// Adjustments ajustes de inventario.
func (uc *UseCase) Adjustments(ctx context.Context, storeID string, q dto.AdjustmentListQuery, w io.Writer) error {
	typ := entity.AdjustmentType(q.Type)
	if typ != "" && !typ.Valid() {
		return fmt.Errorf("%w: type %q", domain.ErrInvalidInput, q.Type)
	}
	list, _, err := uc.repos.Adjustments().List(ctx, repository.AdjustmentFilter{
		StoreID:     storeID,
		Type:        typ,
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		DateRange:   repository.DateRange{From: q.From, To: q.To},
		Page:        exportPage,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			a.AdjustmentDate.Format(dateLayout), a.ReferenceNo, string(a.Type),
			a.WarehouseName, a.ProductName, itoa(a.Quantity), a.Notes,
		})
	}
	return uc.writer.WriteTable(w, []string{"date", "reference_no", "type", "warehouse", "product", "quantity", "notes"}, rows)
}

// StockLots lotes de compra.
func (uc *UseCase) StockLots(ctx context.Context, storeID string, q dto.StockLotListQuery, w io.Writer) error {
	status := entity.StockLotStatus(q.Status)
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, q.Status)
	}
	list, _, err := uc.repos.Lots().List(ctx, repository.StockLotFilter{
		StoreID:     storeID,
		Status:      status,
		WarehouseID: q.WarehouseID,
		SupplierID:  q.SupplierID,
		ProductID:   q.ProductID,
		DateRange:   repository.DateRange{From: q.From, To: q.To},
		Page:        exportPage,
	})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, l := range list {
		rows = append(rows, []string{
			l.PurchaseDate.Format(dateLayout), l.LotReferenceNo, string(l.Status),
			l.SupplierName, l.WarehouseName, l.ProductName, itoa(l.Quantity),
			l.PurchasePrice.StringFixed(2), l.OtherCharges.StringFixed(2),
			l.Discount.StringFixed(2), l.TotalCost().StringFixed(2),
		})
	}
	return uc.writer.WriteTable(w, []string{
		"purchase_date", "lot_reference_no", "status", "supplier", "warehouse", "product",
		"quantity", "purchase_price", "other_charges", "discount", "total_cost",
	}, rows)
}

// Customers clientes.
func (uc *UseCase) Customers(ctx context.Context, storeID string, q dto.CatalogListQuery, w io.Writer) error {
	list, _, err := uc.repos.Customers().List(ctx, repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: exportPage})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.Name, c.TaxID, c.Email, c.Phone, c.Address})
	}
	return uc.writer.WriteTable(w, partyHeader, rows)
}

// Suppliers proveedores.
func (uc *UseCase) Suppliers(ctx context.Context, storeID string, q dto.CatalogListQuery, w io.Writer) error {
	list, _, err := uc.repos.Suppliers().List(ctx, repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: exportPage})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.Name, s.TaxID, s.Email, s.Phone, s.Address})
	}
	return uc.writer.WriteTable(w, partyHeader, rows)
}

var partyHeader = []string{"name", "tax_id", "email", "phone", "address"}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// nullMoney deja la celda vacía cuando el costo no está definido.
func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
