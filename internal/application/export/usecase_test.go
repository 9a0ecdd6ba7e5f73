package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/export"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/csv"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

type fixture struct {
	repos           ports.Repos
	uc              *export.UseCase
	storeID         string
	main, secondary string
	coffee, sugar   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := memory.NewStore().Repos()
	f := &fixture{
		repos:     repos,
		uc:        export.NewUseCase(repos, &csv.Writer{}),
		storeID:   uuid.NewString(),
		main:      uuid.NewString(),
		secondary: uuid.NewString(),
		coffee:    uuid.NewString(),
		sugar:     uuid.NewString(),
	}
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Stores().Create(ctx, &entity.Store{ID: f.storeID, Name: "Tienda", Status: entity.StoreStatusActive}))
	require.NoError(t, repos.Warehouses().Create(ctx, &entity.Warehouse{ID: f.main, StoreID: f.storeID, Name: "Principal"}))
	require.NoError(t, repos.Warehouses().Create(ctx, &entity.Warehouse{ID: f.secondary, StoreID: f.storeID, Name: "Sucursal"}))
	require.NoError(t, repos.Products().Create(ctx, &entity.Product{
		ID: f.coffee, StoreID: f.storeID, SKU: "CAF-500", Name: "Café 500g",
		Price: decimal.NewFromInt(18000), TaxRate: decimal.NewFromInt(19),
	}))
	require.NoError(t, repos.Products().Create(ctx, &entity.Product{
		ID: f.sugar, StoreID: f.storeID, SKU: "AZU-1000", Name: "Azúcar 1kg",
		Price: decimal.NewFromInt(4500), TaxRate: decimal.NewFromInt(5),
	}))
	require.NoError(t, repos.Stock().Create(ctx, &entity.StockRecord{
		ID: uuid.NewString(), StoreID: f.storeID, ProductID: f.coffee, WarehouseID: f.main, Quantity: 10,
		AvgPurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(12000)), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repos.Stock().Create(ctx, &entity.StockRecord{
		ID: uuid.NewString(), StoreID: f.storeID, ProductID: f.sugar, WarehouseID: f.main, Quantity: 2,
		CreatedAt: now, UpdatedAt: now,
	}))
	return f
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestStock_CabeceraYFilas(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer

	require.NoError(t, f.uc.Stock(context.Background(), f.storeID, dto.StockListQuery{}, &buf))

	assert.Equal(t, []string{
		"warehouse,sku,product,quantity,avg_purchase_price",
		"Principal,AZU-1000,Azúcar 1kg,2,",
		"Principal,CAF-500,Café 500g,10,12000.00",
	}, lines(&buf))
}

func TestStock_UmbralBajo(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	threshold := int64(5)

	require.NoError(t, f.uc.Stock(context.Background(), f.storeID, dto.StockListQuery{LowStockThreshold: &threshold}, &buf))

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Contains(t, got[1], "AZU-1000")
}

func TestProducts_FiltroBusqueda(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer

	require.NoError(t, f.uc.Products(context.Background(), f.storeID, dto.ProductListQuery{Search: "caf"}, &buf))

	assert.Equal(t, []string{
		"sku,barcode,name,description,price,tax_rate",
		"CAF-500,,Café 500g,,18000.00,19",
	}, lines(&buf))
}

func TestTransfers_EstadoInvalido(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer

	err := f.uc.Transfers(context.Background(), f.storeID, dto.TransferListQuery{Status: "SHIPPED"}, &buf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, buf.Len())
}

func TestTransfers_Filas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.repos.Transfers().Create(ctx, &entity.InternalTransfer{
		ID: uuid.NewString(), StoreID: f.storeID, FromWarehouseID: f.main, ToWarehouseID: f.secondary,
		ProductID: f.coffee, Quantity: 3, Status: entity.TransferPending, ReferenceNo: "TR-1",
		TransferDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}))
	var buf bytes.Buffer

	require.NoError(t, f.uc.Transfers(ctx, f.storeID, dto.TransferListQuery{WarehouseID: f.secondary}, &buf))

	assert.Equal(t, []string{
		"date,reference_no,status,from_warehouse,to_warehouse,product,quantity,cost_for_transfer,notes",
		"2026-03-05,TR-1,PENDING,Principal,Sucursal,Café 500g,3,,",
	}, lines(&buf))
}

func TestStockLots_TotalCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supplier := uuid.NewString()
	require.NoError(t, f.repos.Suppliers().Create(ctx, &entity.Supplier{ID: supplier, StoreID: f.storeID, Name: "Distribuidora"}))
	require.NoError(t, f.repos.Lots().Create(ctx, &entity.StockLot{
		ID: uuid.NewString(), StoreID: f.storeID, WarehouseID: f.main, SupplierID: supplier, ProductID: f.coffee,
		LotReferenceNo: "L-1", Quantity: 10, PurchasePrice: decimal.NewFromInt(1000),
		OtherCharges: decimal.NewFromInt(500), Discount: decimal.NewFromInt(200),
		PurchaseDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: entity.StockLotPending,
	}))
	var buf bytes.Buffer

	require.NoError(t, f.uc.StockLots(ctx, f.storeID, dto.StockLotListQuery{}, &buf))

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-03-02,L-1,PENDING,Distribuidora,Principal,Café 500g,10,1000.00,500.00,200.00,10300.00", got[1])
}

func TestCustomers_OtraTiendaNoSeExporta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.repos.Customers().Create(ctx, &entity.Customer{ID: uuid.NewString(), StoreID: f.storeID, Name: "Ana", TaxID: "1"}))
	require.NoError(t, f.repos.Customers().Create(ctx, &entity.Customer{ID: uuid.NewString(), StoreID: uuid.NewString(), Name: "Beto", TaxID: "2"}))
	var buf bytes.Buffer

	require.NoError(t, f.uc.Customers(ctx, f.storeID, dto.CatalogListQuery{}, &buf))

	assert.Equal(t, []string{"name,tax_id,email,phone,address", "Ana,1,,,"}, lines(&buf))
}

func TestFilename(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "stock_20260301.csv", f.uc.Filename("stock", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "text/csv; charset=utf-8", f.uc.ContentType())
}
