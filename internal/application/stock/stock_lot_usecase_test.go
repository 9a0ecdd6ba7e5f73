package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func (f *fixture) lotReq(ref string, qty int64, price string, status entity.StockLotStatus) dto.CreateStockLotRequest {
	return dto.CreateStockLotRequest{
		WarehouseID:    f.w1,
		SupplierID:     f.supplier,
		ProductID:      f.product,
		LotReferenceNo: ref,
		Quantity:       qty,
		PurchasePrice:  decimal.RequireFromString(price),
		PurchaseDate:   testDate,
		Status:         string(status),
	}
}

func TestStockLotCreate_EntregadoRecalculaPromedio(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.w1, 10, "5")

	out, err := f.lots.Create(context.Background(), f.storeID, f.userID, f.lotReq("L-001", 10, "7", entity.StockLotDelivered))
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Andina", out.SupplierName)

	rec := f.record(t, f.w1)
	assert.Equal(t, int64(20), rec.Quantity)
	assert.True(t, decimal.NewFromInt(6).Equal(rec.AvgPurchasePrice.Decimal), "got %s", rec.AvgPurchasePrice.Decimal)
}

func TestStockLotCreate_SinRegistroTomaPrecio(t *testing.T) {
	f := newFixture(t)

	_, err := f.lots.Create(context.Background(), f.storeID, f.userID, f.lotReq("L-001", 4, "2.5", entity.StockLotDelivered))
	require.NoError(t, err)

	rec := f.record(t, f.w1)
	require.NotNil(t, rec)
	assert.Equal(t, int64(4), rec.Quantity)
	assert.True(t, decimal.RequireFromString("2.5").Equal(rec.AvgPurchasePrice.Decimal))
}

func TestStockLotCreate_PendienteNoMueveStock(t *testing.T) {
	f := newFixture(t)

	out, err := f.lots.Create(context.Background(), f.storeID, f.userID, f.lotReq("L-001", 4, "2", ""))
	require.NoError(t, err)
	assert.Equal(t, string(entity.StockLotPending), out.Status)
	assert.Nil(t, f.record(t, f.w1))
}

func TestStockLotCreate_CostoTotal(t *testing.T) {
	f := newFixture(t)
	in := f.lotReq("L-001", 10, "3", "")
	in.OtherCharges = ptrTo(decimal.NewFromInt(5))
	in.Discount = ptrTo(decimal.NewFromInt(2))

	out, err := f.lots.Create(context.Background(), f.storeID, f.userID, in)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(33).Equal(out.TotalCost))

	in.Discount = ptrTo(decimal.NewFromInt(-1))
	_, err = f.lots.Create(context.Background(), f.storeID, f.userID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockLotUpdate_EntregaUnaSolaVez(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.w1, 10, "5")
	ctx := context.Background()

	created, err := f.lots.Create(ctx, f.storeID, f.userID, f.lotReq("L-001", 10, "7", ""))
	require.NoError(t, err)

	delivered := ptrTo(string(entity.StockLotDelivered))
	for i := 0; i < 3; i++ {
		_, err = f.lots.Update(ctx, created.ID, f.storeID, f.userID, dto.UpdateStockLotRequest{Status: delivered})
		require.NoError(t, err)
	}
	_, err = f.lots.Update(ctx, created.ID, f.storeID, f.userID, dto.UpdateStockLotRequest{Notes: ptrTo("revisado")})
	require.NoError(t, err)

	rec := f.record(t, f.w1)
	assert.Equal(t, int64(20), rec.Quantity)
	assert.True(t, decimal.NewFromInt(6).Equal(rec.AvgPurchasePrice.Decimal))
	assert.Equal(t, 1, f.movements(t))

	_, err = f.lots.Update(ctx, created.ID, f.storeID, f.userID, dto.UpdateStockLotRequest{
		Status: ptrTo(string(entity.StockLotCancelled)),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStockLotUpdate_OtraTienda(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.lots.Create(ctx, f.storeID, f.userID, f.lotReq("L-001", 10, "7", ""))
	require.NoError(t, err)

	_, err = f.lots.Update(ctx, created.ID, "00000000-0000-0000-0000-0000000000aa", f.userID, dto.UpdateStockLotRequest{
		Status: ptrTo(string(entity.StockLotDelivered)),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f.record(t, f.w1))
}

func TestStockLotCreate_ProveedorInexistente(t *testing.T) {
	f := newFixture(t)
	in := f.lotReq("L-001", 1, "1", entity.StockLotDelivered)
	in.SupplierID = "00000000-0000-0000-0000-0000000000dd"

	_, err := f.lots.Create(context.Background(), f.storeID, f.userID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f.record(t, f.w1))
}

func TestStockLotImport_FallosAislados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	items := []dto.CreateStockLotRequest{
		f.lotReq("L-001", 5, "4", entity.StockLotDelivered),
		f.lotReq("L-002", 0, "4", entity.StockLotDelivered),
		f.lotReq("L-003", 5, "6", entity.StockLotDelivered),
	}
	results := f.lots.Import(ctx, f.storeID, f.userID, items)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, items[1], results[1].Data)
	assert.True(t, results[2].Success)

	first, ok := results[0].Data.(*dto.StockLotResponse)
	require.True(t, ok)
	assert.Equal(t, "L-001", first.LotReferenceNo)

	list, err := f.lots.List(ctx, f.storeID, dto.StockLotListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)

	rec := f.record(t, f.w1)
	assert.Equal(t, int64(10), rec.Quantity)
	assert.True(t, decimal.NewFromInt(5).Equal(rec.AvgPurchasePrice.Decimal))

	summary := stock.Summarize(results)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	f.obs.AssertNumberOfCalls(t, "ObserveImportItem", 3)
	f.obs.AssertCalled(t, "ObserveImportItem", false)
	f.obs.AssertCalled(t, "ObserveMutation", entity.DocumentStockLot, mock.Anything)
}

func TestStockLotImport_Vacio(t *testing.T) {
	f := newFixture(t)

	results := f.lots.Import(context.Background(), f.storeID, f.userID, nil)
	assert.Empty(t, results)
}
