package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// Key identifica un StockRecord.
type Key struct {
	StoreID     string
	ProductID   string
	WarehouseID string
}

// Change resultado de aplicar una mutación a un StockRecord.
// Record es una copia nueva; el original nunca se modifica.
type Change struct {
	Record  *entity.StockRecord
	Created bool  // hay que insertar en lugar de actualizar
	Delta   int64 // cantidad efectivamente aplicada (con signo)
}

// Applied indica si hay algo que persistir.
func (c Change) Applied() bool {
	return c.Record != nil && (c.Created || c.Delta != 0)
}

func newRecord(k Key, qty int64, avg decimal.NullDecimal, now time.Time) *entity.StockRecord {
	return &entity.StockRecord{
		ID:               uuid.New().String(),
		StoreID:          k.StoreID,
		ProductID:        k.ProductID,
		WarehouseID:      k.WarehouseID,
		Quantity:         qty,
		AvgPurchasePrice: avg,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func clone(rec *entity.StockRecord, now time.Time) *entity.StockRecord {
	next := *rec
	next.UpdatedAt = now
	return &next
}

// Receive entrada con costo (recepción de lote). Si no hay registro se crea con avg = unitCost;
// si lo hay se suma qty y se recalcula el promedio ponderado.
func Receive(rec *entity.StockRecord, k Key, qty int64, unitCost decimal.Decimal, now time.Time) Change {
	if rec == nil {
		return Change{
			Record:  newRecord(k, qty, decimal.NewNullDecimal(unitCost.Round(CostScale)), now),
			Created: true,
			Delta:   qty,
		}
	}
	next := clone(rec, now)
	next.AvgPurchasePrice = decimal.NewNullDecimal(WeightedAverage(rec.AvgPurchasePrice, rec.Quantity, unitCost, qty))
	next.Quantity = rec.Quantity + qty
	return Change{Record: next, Delta: qty}
}

// Withdraw salida sin recorte: falla con ErrInsufficientStock si el registro no existe
// o no alcanza. El costo promedio no cambia.
func Withdraw(rec *entity.StockRecord, qty int64, now time.Time) (Change, error) {
	if rec == nil || rec.Quantity < qty {
		return Change{}, domain.ErrInsufficientStock
	}
	next := clone(rec, now)
	next.Quantity = rec.Quantity - qty
	return Change{Record: next, Delta: -qty}, nil
}

// Transfer descuenta qty de src y lo suma a dst. Un destino nuevo hereda el costo promedio
// del origen; un destino existente conserva el suyo.
func Transfer(src, dst *entity.StockRecord, dstKey Key, qty int64, now time.Time) (out, in Change, err error) {
	out, err = Withdraw(src, qty, now)
	if err != nil {
		return Change{}, Change{}, err
	}
	if dst == nil {
		in = Change{Record: newRecord(dstKey, qty, src.AvgPurchasePrice, now), Created: true, Delta: qty}
		return out, in, nil
	}
	next := clone(dst, now)
	next.Quantity = dst.Quantity + qty
	return out, Change{Record: next, Delta: qty}, nil
}

// Adjust aplica un ajuste con piso en 0. INCREASE sin registro lo crea con costo nulo;
// DECREASE sin registro no hace nada. Un DECREASE mayor al stock deja la cantidad en 0.
func Adjust(rec *entity.StockRecord, k Key, typ entity.AdjustmentType, qty int64, now time.Time) Change {
	if typ == entity.AdjustmentIncrease {
		if rec == nil {
			return Change{Record: newRecord(k, qty, decimal.NullDecimal{}, now), Created: true, Delta: qty}
		}
		next := clone(rec, now)
		next.Quantity = rec.Quantity + qty
		return Change{Record: next, Delta: qty}
	}
	if rec == nil {
		return Change{}
	}
	next := clone(rec, now)
	next.Quantity = max(rec.Quantity-qty, 0)
	return Change{Record: next, Delta: next.Quantity - rec.Quantity}
}
