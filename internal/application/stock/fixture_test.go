package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

var testDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

type observerMock struct {
	mock.Mock
}

func (m *observerMock) ObserveMutation(protocol string, err error) {
	m.Called(protocol, err == nil)
}

func (m *observerMock) ObserveImportItem(err error) {
	m.Called(err == nil)
}

type fixture struct {
	repos       ports.Repos
	obs         *observerMock
	transfers   *stock.TransferUseCase
	adjustments *stock.AdjustmentUseCase
	lots        *stock.StockLotUseCase
	query       *stock.QueryUseCase

	storeID, userID string
	w1, w2          string
	product         string
	supplier        string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos, tx := store.Repos(), store.TxRunner()
	obs := &observerMock{}
	obs.On("ObserveMutation", mock.Anything, mock.Anything).Maybe()
	obs.On("ObserveImportItem", mock.Anything).Maybe()

	log := zerolog.Nop()
	l := stock.NewLedger(log)
	f := &fixture{
		repos:       repos,
		obs:         obs,
		transfers:   stock.NewTransferUseCase(tx, repos, l, obs, log),
		adjustments: stock.NewAdjustmentUseCase(tx, repos, l, obs, log),
		lots:        stock.NewStockLotUseCase(tx, repos, l, obs, log),
		query:       stock.NewQueryUseCase(repos),
		storeID:     uuid.NewString(),
		userID:      uuid.NewString(),
		w1:          uuid.NewString(),
		w2:          uuid.NewString(),
		product:     uuid.NewString(),
		supplier:    uuid.NewString(),
	}

	ctx := context.Background()
	require.NoError(t, repos.Stores().Create(ctx, &entity.Store{ID: f.storeID, Name: "Tienda Centro", Status: entity.StoreStatusActive}))
	require.NoError(t, repos.Warehouses().Create(ctx, &entity.Warehouse{ID: f.w1, StoreID: f.storeID, Name: "Principal"}))
	require.NoError(t, repos.Warehouses().Create(ctx, &entity.Warehouse{ID: f.w2, StoreID: f.storeID, Name: "Sucursal Norte"}))
	require.NoError(t, repos.Products().Create(ctx, &entity.Product{
		ID: f.product, StoreID: f.storeID, SKU: "CAF-500", Name: "Café 500g",
		Price: decimal.NewFromInt(18000), TaxRate: decimal.NewFromInt(19),
	}))
	require.NoError(t, repos.Suppliers().Create(ctx, &entity.Supplier{ID: f.supplier, StoreID: f.storeID, Name: "Distribuidora Andina"}))
	return f
}

// seed crea un registro de stock directamente en el almacén.
func (f *fixture) seed(t *testing.T, warehouseID string, qty int64, avg string) {
	t.Helper()
	rec := &entity.StockRecord{
		ID:          uuid.NewString(),
		StoreID:     f.storeID,
		ProductID:   f.product,
		WarehouseID: warehouseID,
		Quantity:    qty,
		CreatedAt:   testDate,
		UpdatedAt:   testDate,
	}
	if avg != "" {
		rec.AvgPurchasePrice = decimal.NewNullDecimal(decimal.RequireFromString(avg))
	}
	require.NoError(t, f.repos.Stock().Create(context.Background(), rec))
}

// record devuelve el registro de stock o nil.
func (f *fixture) record(t *testing.T, warehouseID string) *entity.StockRecord {
	t.Helper()
	rec, err := f.repos.Stock().Get(context.Background(), f.product, warehouseID)
	require.NoError(t, err)
	return rec
}

func (f *fixture) quantity(t *testing.T, warehouseID string) int64 {
	t.Helper()
	rec := f.record(t, warehouseID)
	if rec == nil {
		return 0
	}
	return rec.Quantity
}

func (f *fixture) movements(t *testing.T) int {
	t.Helper()
	_, total, err := f.repos.Movements().List(context.Background(), repository.MovementFilter{StoreID: f.storeID})
	require.NoError(t, err)
	return total
}

func ptrTo[T any](v T) *T { return &v }
