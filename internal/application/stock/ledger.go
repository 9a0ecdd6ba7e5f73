package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	ledger "github.com/jhoicas/backoffice-api/internal/domain/stock"
)

// MovementRef identifica el documento que origina una mutación de stock.
type MovementRef struct {
	StoreID      string
	DocumentType string
	DocumentID   string
	CreatedBy    string
	At           time.Time
}

// Ledger aplica las mutaciones de stock dentro de la transacción del caller:
// bloquea el registro (GetForUpdate), calcula el cambio con el dominio, persiste el
// registro y escribe el movimiento de kardex. Nunca abre ni cierra transacciones.
type Ledger struct {
	log zerolog.Logger
}

// NewLedger construye el servicio de libro de stock.
func NewLedger(log zerolog.Logger) *Ledger {
	return &Ledger{log: log}
}

// Transfer mueve t.Quantity de la bodega origen a la destino.
// Falla con domain.ErrInsufficientStock si el origen no existe o no alcanza.
func (l *Ledger) Transfer(ctx context.Context, r ports.Repos, t *entity.InternalTransfer, ref MovementRef) error {
	src, dst, err := lockPair(ctx, r.Stock(), t.ProductID, t.FromWarehouseID, t.ToWarehouseID)
	if err != nil {
		return err
	}
	dstKey := ledger.Key{StoreID: ref.StoreID, ProductID: t.ProductID, WarehouseID: t.ToWarehouseID}
	out, in, err := ledger.Transfer(src, dst, dstKey, t.Quantity, ref.At)
	if err != nil {
		return err
	}
	if err := l.persist(ctx, r, out, entity.MovementTransferOut, src.AvgPurchasePrice, ref); err != nil {
		return err
	}
	return l.persist(ctx, r, in, entity.MovementTransferIn, src.AvgPurchasePrice, ref)
}

// Adjust aplica un ajuste con piso en 0 (DECREASE sin registro no hace nada).
func (l *Ledger) Adjust(ctx context.Context, r ports.Repos, a *entity.StockAdjustment, ref MovementRef) error {
	rec, err := r.Stock().GetForUpdate(ctx, a.ProductID, a.WarehouseID)
	if err != nil {
		return err
	}
	key := ledger.Key{StoreID: ref.StoreID, ProductID: a.ProductID, WarehouseID: a.WarehouseID}
	ch := ledger.Adjust(rec, key, a.Type, a.Quantity, ref.At)
	movType := entity.MovementAdjustmentIn
	if a.Type == entity.AdjustmentDecrease {
		movType = entity.MovementAdjustmentOut
	}
	var cost decimal.NullDecimal
	if rec != nil {
		cost = rec.AvgPurchasePrice
	}
	return l.persist(ctx, r, ch, movType, cost, ref)
}

// Receive ingresa un lote con su precio de compra y recalcula el costo promedio ponderado.
func (l *Ledger) Receive(ctx context.Context, r ports.Repos, lot *entity.StockLot, ref MovementRef) error {
	rec, err := r.Stock().GetForUpdate(ctx, lot.ProductID, lot.WarehouseID)
	if err != nil {
		return err
	}
	key := ledger.Key{StoreID: ref.StoreID, ProductID: lot.ProductID, WarehouseID: lot.WarehouseID}
	ch := ledger.Receive(rec, key, lot.Quantity, lot.PurchasePrice, ref.At)
	return l.persist(ctx, r, ch, entity.MovementLotReceipt, decimal.NewNullDecimal(lot.PurchasePrice), ref)
}

// Withdraw descuenta qty sin recorte (ventas). Falla con domain.ErrInsufficientStock.
func (l *Ledger) Withdraw(ctx context.Context, r ports.Repos, productID, warehouseID string, qty int64, ref MovementRef) error {
	rec, err := r.Stock().GetForUpdate(ctx, productID, warehouseID)
	if err != nil {
		return err
	}
	ch, err := ledger.Withdraw(rec, qty, ref.At)
	if err != nil {
		return err
	}
	return l.persist(ctx, r, ch, entity.MovementSale, rec.AvgPurchasePrice, ref)
}

func (l *Ledger) persist(ctx context.Context, r ports.Repos, ch ledger.Change, movType string, unitCost decimal.NullDecimal, ref MovementRef) error {
	if !ch.Applied() {
		return nil
	}
	var err error
	if ch.Created {
		err = r.Stock().Create(ctx, ch.Record)
	} else {
		err = r.Stock().Update(ctx, ch.Record)
	}
	if err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		StoreID:      ref.StoreID,
		ProductID:    ch.Record.ProductID,
		WarehouseID:  ch.Record.WarehouseID,
		Type:         movType,
		Quantity:     ch.Delta,
		UnitCost:     unitCost,
		BalanceAfter: ch.Record.Quantity,
		DocumentType: ref.DocumentType,
		DocumentID:   ref.DocumentID,
		CreatedBy:    ref.CreatedBy,
		CreatedAt:    ref.At,
	}
	if err := r.Movements().Create(ctx, mov); err != nil {
		return err
	}
	l.log.Debug().
		Str("protocol", ref.DocumentType).
		Str("document_id", ref.DocumentID).
		Str("product_id", mov.ProductID).
		Str("warehouse_id", mov.WarehouseID).
		Int64("delta", mov.Quantity).
		Msg("mutación de stock aplicada")
	return nil
}

// lockPair bloquea los dos registros en orden de bodega para que traslados cruzados
// concurrentes no se bloqueen mutuamente.
func lockPair(ctx context.Context, repo repository.StockRepository, productID, fromID, toID string) (src, dst *entity.StockRecord, err error) {
	first, second := fromID, toID
	if toID < fromID {
		first, second = toID, fromID
	}
	a, err := repo.GetForUpdate(ctx, productID, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := repo.GetForUpdate(ctx, productID, second)
	if err != nil {
		return nil, nil, err
	}
	if first == fromID {
		return a, b, nil
	}
	return b, a, nil
}
