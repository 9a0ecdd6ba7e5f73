package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

var hundred = decimal.NewFromInt(100)

// CreateInvoiceUseCase crea una factura y descuenta el inventario en una sola transacción.
type CreateInvoiceUseCase struct {
	tx     ports.TxRunner
	repos  ports.Repos
	ledger StockLedger
	obs    ports.MutationObserver
	log    zerolog.Logger
	now    func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(tx ports.TxRunner, repos ports.Repos, ledger StockLedger, obs ports.MutationObserver, log zerolog.Logger) *CreateInvoiceUseCase {
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &CreateInvoiceUseCase{tx: tx, repos: repos, ledger: ledger, obs: obs, log: log, now: time.Now}
}

// CreateInvoice registra una salida SALE por cada línea y guarda cabecera y detalles.
// Si alguna línea no tiene stock suficiente no queda nada escrito (ni factura ni movimientos).
// Number vacío toma el siguiente consecutivo del prefijo.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, storeID, userID string, in dto.CreateInvoiceRequest) (_ *dto.InvoiceResponse, err error) {
	ctx, span := tracing.Start(ctx, "billing.invoice.create")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentInvoice, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	for _, item := range in.Items {
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
		}
	}

	now := uc.now().UTC()
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Prefix:      in.Prefix,
		Number:      in.Number,
		Date:        now,
		Status:      entity.InvoiceStatusIssued,
		Notes:       in.Notes,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var saved *entity.Invoice
	var savedDetails []*entity.InvoiceDetail
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		if err := checkInvoiceRefs(ctx, r, inv); err != nil {
			return err
		}
		details, err := buildDetails(ctx, r, inv, in.Items)
		if err != nil {
			return err
		}
		ref := stock.MovementRef{StoreID: storeID, DocumentType: entity.DocumentInvoice, DocumentID: inv.ID, CreatedBy: userID, At: now}
		for _, d := range details {
			if err := uc.ledger.Withdraw(ctx, r, d.ProductID, inv.WarehouseID, d.Quantity, ref); err != nil {
				return err
			}
		}
		if inv.Number == "" {
			next, err := r.Invoices().NextNumber(ctx, storeID, inv.Prefix)
			if err != nil {
				return err
			}
			inv.Number = strconv.FormatInt(next, 10)
		}
		if err := r.Invoices().Create(ctx, inv, details); err != nil {
			return err
		}
		saved, savedDetails, err = r.Invoices().GetByID(ctx, storeID, inv.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("number", inv.Prefix+inv.Number).
		Str("grand_total", inv.GrandTotal.StringFixed(2)).
		Msg("factura emitida")
	return ToInvoiceResponse(saved, savedDetails), nil
}

// GetByID obtiene una factura de la tienda con su detalle.
func (uc *CreateInvoiceUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.InvoiceResponse, error) {
	inv, details, err := uc.repos.Invoices().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return ToInvoiceResponse(inv, details), nil
}

// List lista facturas (sin detalle).
func (uc *CreateInvoiceUseCase) List(ctx context.Context, storeID string, q dto.InvoiceListQuery) (*dto.InvoiceListResponse, error) {
	q.DefaultPage()
	f := repository.InvoiceFilter{
		StoreID:    storeID,
		CustomerID: q.CustomerID,
		DateRange:  repository.DateRange{From: q.From, To: q.To},
		Page:       repository.Page{Limit: q.Limit, Offset: q.Offset},
	}
	list, total, err := uc.repos.Invoices().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *ToInvoiceResponse(inv, nil))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

func checkInvoiceRefs(ctx context.Context, r ports.Repos, inv *entity.Invoice) error {
	customer, err := r.Customers().GetByID(ctx, inv.StoreID, inv.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, inv.CustomerID)
	}
	wh, err := r.Warehouses().GetByID(ctx, inv.StoreID, inv.WarehouseID)
	if err != nil {
		return err
	}
	if wh == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, inv.WarehouseID)
	}
	return nil
}

// buildDetails resuelve productos y precios y calcula los totales de la cabecera.
// IVA por línea = subtotal * tasa / 100, redondeado a 2 decimales.
func buildDetails(ctx context.Context, r ports.Repos, inv *entity.Invoice, items []dto.InvoiceItemRequest) ([]*entity.InvoiceDetail, error) {
	details := make([]*entity.InvoiceDetail, 0, len(items))
	inv.NetTotal, inv.TaxTotal = decimal.Zero, decimal.Zero
	for _, item := range items {
		product, err := r.Products().GetByID(ctx, inv.StoreID, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		price := product.Price
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		subtotal := price.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
		tax := subtotal.Mul(product.TaxRate).Div(hundred).Round(2)
		details = append(details, &entity.InvoiceDetail{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   product.ID,
			Quantity:    item.Quantity,
			UnitPrice:   price,
			TaxRate:     product.TaxRate,
			Subtotal:    subtotal,
			TaxAmount:   tax,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
		})
		inv.NetTotal = inv.NetTotal.Add(subtotal)
		inv.TaxTotal = inv.TaxTotal.Add(tax)
	}
	inv.GrandTotal = inv.NetTotal.Add(inv.TaxTotal)
	return details, nil
}

// ToInvoiceResponse mapea la factura (y su detalle, si se pasa) a su DTO.
func ToInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:           inv.ID,
		StoreID:      inv.StoreID,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		WarehouseID:  inv.WarehouseID,
		Prefix:       inv.Prefix,
		Number:       inv.Number,
		Date:         inv.Date,
		NetTotal:     inv.NetTotal,
		TaxTotal:     inv.TaxTotal,
		GrandTotal:   inv.GrandTotal,
		Status:       inv.Status,
		Notes:        inv.Notes,
		QRData:       inv.QRData(),
	}
	for _, d := range details {
		out.Details = append(out.Details, dto.InvoiceDetailResponse{
			ID:          d.ID,
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			TaxRate:     d.TaxRate,
			Subtotal:    d.Subtotal,
			TaxAmount:   d.TaxAmount,
		})
	}
	return out
}
