package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	ledger "github.com/jhoicas/backoffice-api/internal/domain/stock"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

// StockLotUseCase recepción de lotes de proveedor. Un lote entra al stock una única vez,
// al pasar a DELIVERED, recalculando el costo promedio ponderado.
type StockLotUseCase struct {
	tx     ports.TxRunner
	repos  ports.Repos
	ledger *Ledger
	obs    ports.MutationObserver
	log    zerolog.Logger
	now    func() time.Time
}

// NewStockLotUseCase construye el caso de uso.
func NewStockLotUseCase(tx ports.TxRunner, repos ports.Repos, l *Ledger, obs ports.MutationObserver, log zerolog.Logger) *StockLotUseCase {
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &StockLotUseCase{tx: tx, repos: repos, ledger: l, obs: obs, log: log, now: time.Now}
}

// Create persiste el lote y, si nace DELIVERED, lo ingresa al stock en la misma transacción.
func (uc *StockLotUseCase) Create(ctx context.Context, storeID, userID string, in dto.CreateStockLotRequest) (_ *dto.StockLotResponse, err error) {
	ctx, span := tracing.Start(ctx, "stock.lot.create")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentStockLot, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := checkLotAmounts(in.PurchasePrice, in.OtherCharges, in.Discount); err != nil {
		return nil, err
	}
	status := entity.StockLotStatus(in.Status)
	if status == "" {
		status = entity.StockLotPending
	}

	now := uc.now().UTC()
	lot := &entity.StockLot{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		WarehouseID:    in.WarehouseID,
		SupplierID:     in.SupplierID,
		ProductID:      in.ProductID,
		LotReferenceNo: in.LotReferenceNo,
		Quantity:       in.Quantity,
		PurchasePrice:  in.PurchasePrice,
		PurchaseDate:   in.PurchaseDate,
		Status:         status,
		OtherCharges:   valueOrZero(in.OtherCharges),
		Discount:       valueOrZero(in.Discount),
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var saved *entity.StockLot
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		if err := checkLotRefs(ctx, r, lot); err != nil {
			return err
		}
		if err := r.Lots().Create(ctx, lot); err != nil {
			return err
		}
		if ledger.LotActivates("", lot.Status) {
			if err := uc.ledger.Receive(ctx, r, lot, lotRef(lot, userID, now)); err != nil {
				return err
			}
		}
		var err error
		saved, err = r.Lots().GetByID(ctx, storeID, lot.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("lot_id", lot.ID).Str("status", string(lot.Status)).Msg("lote registrado")
	return ToStockLotResponse(saved), nil
}

// Update modifica el lote de la tienda (bloqueado FOR UPDATE) e ingresa el stock solo cuando
// el estado pasa a DELIVERED desde otro estado. Un lote entregado no puede salir de DELIVERED.
func (uc *StockLotUseCase) Update(ctx context.Context, id, storeID, userID string, in dto.UpdateStockLotRequest) (_ *dto.StockLotResponse, err error) {
	ctx, span := tracing.Start(ctx, "stock.lot.update")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentStockLot, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var saved *entity.StockLot
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		cur, err := r.Lots().GetForUpdate(ctx, storeID, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		next := *cur
		patchLot(&next, in)
		if err := checkLotAmounts(next.PurchasePrice, &next.OtherCharges, &next.Discount); err != nil {
			return err
		}
		if ledger.LeavesGate(cur.Status, next.Status, entity.StockLotDelivered) {
			return fmt.Errorf("%w: el lote ya fue entregado", domain.ErrConflict)
		}
		if err := checkLotRefs(ctx, r, &next); err != nil {
			return err
		}
		now := uc.now().UTC()
		next.UpdatedAt = now
		if err := r.Lots().Update(ctx, &next); err != nil {
			return err
		}
		if ledger.LotActivates(cur.Status, next.Status) {
			if err := uc.ledger.Receive(ctx, r, &next, lotRef(&next, userID, now)); err != nil {
				return err
			}
		}
		saved, err = r.Lots().GetByID(ctx, storeID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToStockLotResponse(saved), nil
}

// Delete elimina el lote de la tienda. No revierte un ingreso ya aplicado.
func (uc *StockLotUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Lots().Delete(ctx, storeID, id)
}

// GetByID obtiene un lote de la tienda.
func (uc *StockLotUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.StockLotResponse, error) {
	lot, err := uc.repos.Lots().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return ToStockLotResponse(lot), nil
}

// List lista lotes de la tienda con filtros y paginación.
func (uc *StockLotUseCase) List(ctx context.Context, storeID string, q dto.StockLotListQuery) (*dto.StockLotListResponse, error) {
	if q.Status != "" && !entity.StockLotStatus(q.Status).Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, q.Status)
	}
	f := repository.StockLotFilter{
		StoreID:     storeID,
		Status:      entity.StockLotStatus(q.Status),
		WarehouseID: q.WarehouseID,
		SupplierID:  q.SupplierID,
		ProductID:   q.ProductID,
		DateRange:   toDateRange(q.DateRangeQuery),
		Page:        toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Lots().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLotResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *ToStockLotResponse(l))
	}
	return &dto.StockLotListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

func checkLotRefs(ctx context.Context, r ports.Repos, l *entity.StockLot) error {
	if _, err := requireWarehouse(ctx, r, l.StoreID, l.WarehouseID); err != nil {
		return err
	}
	if _, err := requireSupplier(ctx, r, l.StoreID, l.SupplierID); err != nil {
		return err
	}
	_, err := requireProduct(ctx, r, l.StoreID, l.ProductID)
	return err
}

func checkLotAmounts(price decimal.Decimal, otherCharges, discount *decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: purchase_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if otherCharges != nil && otherCharges.IsNegative() {
		return fmt.Errorf("%w: other_charges no puede ser negativo", domain.ErrInvalidInput)
	}
	if discount != nil && discount.IsNegative() {
		return fmt.Errorf("%w: discount no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func patchLot(l *entity.StockLot, in dto.UpdateStockLotRequest) {
	if in.WarehouseID != nil {
		l.WarehouseID = *in.WarehouseID
	}
	if in.SupplierID != nil {
		l.SupplierID = *in.SupplierID
	}
	if in.ProductID != nil {
		l.ProductID = *in.ProductID
	}
	if in.LotReferenceNo != nil {
		l.LotReferenceNo = *in.LotReferenceNo
	}
	if in.Quantity != nil {
		l.Quantity = *in.Quantity
	}
	if in.PurchasePrice != nil {
		l.PurchasePrice = *in.PurchasePrice
	}
	if in.PurchaseDate != nil {
		l.PurchaseDate = *in.PurchaseDate
	}
	if in.Status != nil {
		l.Status = entity.StockLotStatus(*in.Status)
	}
	if in.OtherCharges != nil {
		l.OtherCharges = *in.OtherCharges
	}
	if in.Discount != nil {
		l.Discount = *in.Discount
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
}

func lotRef(l *entity.StockLot, userID string, at time.Time) MovementRef {
	return MovementRef{
		StoreID:      l.StoreID,
		DocumentType: entity.DocumentStockLot,
		DocumentID:   l.ID,
		CreatedBy:    userID,
		At:           at,
	}
}
