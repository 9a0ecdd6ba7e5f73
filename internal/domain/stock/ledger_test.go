package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

var (
	now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	key = Key{StoreID: "s1", ProductID: "p1", WarehouseID: "w1"}
)

func record(qty int64, avg string) *entity.StockRecord {
	r := &entity.StockRecord{ID: "r1", StoreID: "s1", ProductID: "p1", WarehouseID: "w1", Quantity: qty}
	if avg != "" {
		r.AvgPurchasePrice = decimal.NewNullDecimal(decimal.RequireFromString(avg))
	}
	return r
}

func TestReceive_Existente(t *testing.T) {
	rec := record(10, "5")

	ch := Receive(rec, key, 10, decimal.NewFromInt(7), now)

	assert.False(t, ch.Created)
	assert.Equal(t, int64(20), ch.Record.Quantity)
	assert.True(t, decimal.NewFromInt(6).Equal(ch.Record.AvgPurchasePrice.Decimal))
	assert.Equal(t, int64(10), rec.Quantity, "el original no se modifica")
	assert.Equal(t, "r1", ch.Record.ID)
}

func TestReceive_Nuevo(t *testing.T) {
	ch := Receive(nil, key, 3, decimal.RequireFromString("2.5"), now)

	require.True(t, ch.Created)
	assert.NotEmpty(t, ch.Record.ID)
	assert.Equal(t, int64(3), ch.Record.Quantity)
	assert.Equal(t, "w1", ch.Record.WarehouseID)
	assert.True(t, ch.Record.AvgPurchasePrice.Valid)
	assert.Equal(t, "2.5", ch.Record.AvgPurchasePrice.Decimal.String())
}

func TestWithdraw(t *testing.T) {
	ch, err := Withdraw(record(10, "5"), 4, now)
	require.NoError(t, err)
	assert.Equal(t, int64(6), ch.Record.Quantity)
	assert.Equal(t, int64(-4), ch.Delta)
	assert.Equal(t, "5", ch.Record.AvgPurchasePrice.Decimal.String())

	_, err = Withdraw(record(3, "5"), 4, now)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = Withdraw(nil, 1, now)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestTransfer_DestinoNuevoHeredaCosto(t *testing.T) {
	src := record(10, "5")
	dstKey := Key{StoreID: "s1", ProductID: "p1", WarehouseID: "w2"}

	out, in, err := Transfer(src, nil, dstKey, 4, now)
	require.NoError(t, err)

	assert.Equal(t, int64(6), out.Record.Quantity)
	require.True(t, in.Created)
	assert.Equal(t, int64(4), in.Record.Quantity)
	assert.Equal(t, "w2", in.Record.WarehouseID)
	assert.Equal(t, src.AvgPurchasePrice, in.Record.AvgPurchasePrice)
}

func TestTransfer_DestinoExistenteConservaCosto(t *testing.T) {
	src := record(10, "5")
	dst := &entity.StockRecord{ID: "r2", ProductID: "p1", WarehouseID: "w2", Quantity: 1,
		AvgPurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(9))}

	_, in, err := Transfer(src, dst, Key{}, 4, now)
	require.NoError(t, err)

	assert.False(t, in.Created)
	assert.Equal(t, int64(5), in.Record.Quantity)
	assert.Equal(t, "9", in.Record.AvgPurchasePrice.Decimal.String())
}

func TestTransfer_Insuficiente(t *testing.T) {
	_, _, err := Transfer(record(2, "5"), nil, key, 4, now)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAdjust(t *testing.T) {
	t.Run("decrease con piso en cero", func(t *testing.T) {
		ch := Adjust(record(3, "5"), key, entity.AdjustmentDecrease, 10, now)
		assert.True(t, ch.Applied())
		assert.Equal(t, int64(0), ch.Record.Quantity)
		assert.Equal(t, int64(-3), ch.Delta)
	})
	t.Run("decrease sin registro es no-op", func(t *testing.T) {
		ch := Adjust(nil, key, entity.AdjustmentDecrease, 10, now)
		assert.False(t, ch.Applied())
		assert.Nil(t, ch.Record)
	})
	t.Run("decrease sobre cero no aplica", func(t *testing.T) {
		ch := Adjust(record(0, ""), key, entity.AdjustmentDecrease, 1, now)
		assert.False(t, ch.Applied())
	})
	t.Run("increase sin registro crea con costo nulo", func(t *testing.T) {
		ch := Adjust(nil, key, entity.AdjustmentIncrease, 7, now)
		require.True(t, ch.Created)
		assert.Equal(t, int64(7), ch.Record.Quantity)
		assert.False(t, ch.Record.AvgPurchasePrice.Valid)
	})
	t.Run("increase existente conserva costo", func(t *testing.T) {
		ch := Adjust(record(2, "5"), key, entity.AdjustmentIncrease, 3, now)
		assert.Equal(t, int64(5), ch.Record.Quantity)
		assert.Equal(t, "5", ch.Record.AvgPurchasePrice.Decimal.String())
	})
}
