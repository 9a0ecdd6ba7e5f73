package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func (f *fixture) adjustmentReq(typ entity.AdjustmentType, qty int64) dto.CreateAdjustmentRequest {
	return dto.CreateAdjustmentRequest{
		WarehouseID:    f.w1,
		ProductID:      f.product,
		Quantity:       qty,
		Type:           string(typ),
		AdjustmentDate: testDate,
	}
}

func TestAdjustmentCreate(t *testing.T) {
	tests := []struct {
		name    string
		seedQty int64 // -1 = sin registro
		typ     entity.AdjustmentType
		qty     int64
		want    int64
		exists  bool
		movs    int
	}{
		{name: "increase suma", seedQty: 4, typ: entity.AdjustmentIncrease, qty: 6, want: 10, exists: true, movs: 1},
		{name: "decrease resta", seedQty: 10, typ: entity.AdjustmentDecrease, qty: 3, want: 7, exists: true, movs: 1},
		{name: "decrease mayor al stock queda en cero", seedQty: 5, typ: entity.AdjustmentDecrease, qty: 8, want: 0, exists: true, movs: 1},
		{name: "decrease sobre cero no escribe movimiento", seedQty: 0, typ: entity.AdjustmentDecrease, qty: 2, want: 0, exists: true, movs: 0},
		{name: "increase sin registro lo crea", seedQty: -1, typ: entity.AdjustmentIncrease, qty: 5, want: 5, exists: true, movs: 1},
		{name: "decrease sin registro no hace nada", seedQty: -1, typ: entity.AdjustmentDecrease, qty: 5, want: 0, exists: false, movs: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.seedQty >= 0 {
				f.seed(t, f.w1, tt.seedQty, "5")
			}

			out, err := f.adjustments.Create(context.Background(), f.storeID, f.userID, f.adjustmentReq(tt.typ, tt.qty))
			require.NoError(t, err)
			assert.Equal(t, "Principal", out.WarehouseName)

			rec := f.record(t, f.w1)
			if !tt.exists {
				assert.Nil(t, rec)
			} else {
				require.NotNil(t, rec)
				assert.Equal(t, tt.want, rec.Quantity)
			}
			assert.Equal(t, tt.movs, f.movements(t))
		})
	}
}

func TestAdjustmentCreate_IncreaseSinRegistroCostoNulo(t *testing.T) {
	f := newFixture(t)

	_, err := f.adjustments.Create(context.Background(), f.storeID, f.userID, f.adjustmentReq(entity.AdjustmentIncrease, 3))
	require.NoError(t, err)

	rec := f.record(t, f.w1)
	require.NotNil(t, rec)
	assert.False(t, rec.AvgPurchasePrice.Valid)
}

func TestAdjustmentUpdate_NoRecalculaStock(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.w1, 10, "5")
	ctx := context.Background()

	created, err := f.adjustments.Create(ctx, f.storeID, f.userID, f.adjustmentReq(entity.AdjustmentDecrease, 4))
	require.NoError(t, err)
	require.Equal(t, int64(6), f.quantity(t, f.w1))

	for i := 0; i < 2; i++ {
		out, err := f.adjustments.Update(ctx, created.ID, f.storeID, dto.UpdateAdjustmentRequest{
			Quantity: ptrTo(int64(1)),
			Type:     ptrTo(string(entity.AdjustmentIncrease)),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Quantity)
	}

	require.NoError(t, f.adjustments.Delete(ctx, created.ID, f.storeID))
	assert.Equal(t, int64(6), f.quantity(t, f.w1))
	assert.Equal(t, 1, f.movements(t))
}

func TestAdjustment_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.adjustments.Create(ctx, f.storeID, f.userID, f.adjustmentReq("SET", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := f.adjustmentReq(entity.AdjustmentIncrease, 1)
	in.ProductID = "00000000-0000-0000-0000-0000000000bb"
	_, err = f.adjustments.Create(ctx, f.storeID, f.userID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f.record(t, f.w1))

	_, err = f.adjustments.Update(ctx, "00000000-0000-0000-0000-0000000000cc", f.storeID, dto.UpdateAdjustmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.adjustments.List(ctx, f.storeID, dto.AdjustmentListQuery{Type: "SET"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustmentList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.adjustments.Create(ctx, f.storeID, f.userID, f.adjustmentReq(entity.AdjustmentIncrease, 5))
	require.NoError(t, err)
	_, err = f.adjustments.Create(ctx, f.storeID, f.userID, f.adjustmentReq(entity.AdjustmentDecrease, 1))
	require.NoError(t, err)

	list, err := f.adjustments.List(ctx, f.storeID, dto.AdjustmentListQuery{Type: string(entity.AdjustmentIncrease)})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, int64(5), list.Items[0].Quantity)
	assert.Equal(t, "Café 500g", list.Items[0].ProductName)
}
