package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

func TestTxRunner_RestauraEnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Repos().Warehouses().Create(ctx, &entity.Warehouse{ID: "w1", StoreID: "s1", Name: "Principal"}))

	boom := errors.New("boom")
	err := s.TxRunner().Run(ctx, func(r ports.Repos) error {
		require.NoError(t, r.Warehouses().Create(ctx, &entity.Warehouse{ID: "w2", StoreID: "s1", Name: "Norte"}))
		require.NoError(t, r.Stock().Create(ctx, &entity.StockRecord{ID: "r1", StoreID: "s1", ProductID: "p1", WarehouseID: "w1", Quantity: 3}))
		require.NoError(t, r.Movements().Create(ctx, &entity.StockMovement{ID: "m1", StoreID: "s1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	w, err := s.Repos().Warehouses().GetByID(ctx, "s1", "w2")
	require.NoError(t, err)
	assert.Nil(t, w)
	rec, err := s.Repos().Stock().Get(ctx, "p1", "w1")
	require.NoError(t, err)
	assert.Nil(t, rec)
	_, total, err := s.Repos().Movements().List(ctx, repository.MovementFilter{StoreID: "s1"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTxRunner_Commit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.TxRunner().Run(ctx, func(r ports.Repos) error {
		return r.Units().Create(ctx, &entity.Unit{ID: "u1", StoreID: "s1", Name: "Caja", ShortName: "cj"})
	})
	require.NoError(t, err)

	u, err := s.Repos().Units().GetByID(ctx, "s1", "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Caja", u.Name)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewStore().TxRunner().Run(ctx, func(ports.Repos) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRepos_AcotadoATienda(t *testing.T) {
	r := NewStore().Repos()
	ctx := context.Background()
	require.NoError(t, r.Suppliers().Create(ctx, &entity.Supplier{ID: "sup", StoreID: "s1", Name: "Andina"}))

	got, err := r.Suppliers().GetByID(ctx, "s2", "sup")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = r.Suppliers().Update(ctx, &entity.Supplier{ID: "sup", StoreID: "s2", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Suppliers().Delete(ctx, "s2", "sup"), domain.ErrNotFound)
	assert.NoError(t, r.Suppliers().Delete(ctx, "s1", "sup"))
}

func TestRepos_Unicidad(t *testing.T) {
	r := NewStore().Repos()
	ctx := context.Background()

	require.NoError(t, r.Products().Create(ctx, &entity.Product{ID: "p1", StoreID: "s1", SKU: "A-1", Barcode: "770"}))
	assert.ErrorIs(t, r.Products().Create(ctx, &entity.Product{ID: "p2", StoreID: "s1", SKU: "A-1"}), domain.ErrDuplicate)
	assert.ErrorIs(t, r.Products().Create(ctx, &entity.Product{ID: "p3", StoreID: "s1", SKU: "A-3", Barcode: "770"}), domain.ErrDuplicate)
	assert.NoError(t, r.Products().Create(ctx, &entity.Product{ID: "p4", StoreID: "s2", SKU: "A-1"}))

	require.NoError(t, r.Users().Create(ctx, &entity.User{ID: "u1", Email: "ana@tienda.co"}))
	assert.ErrorIs(t, r.Users().Create(ctx, &entity.User{ID: "u2", Email: "ANA@tienda.co"}), domain.ErrEmailAlreadyExists)

	rec := &entity.StockRecord{ID: "r1", ProductID: "p1", WarehouseID: "w1"}
	require.NoError(t, r.Stock().Create(ctx, rec))
	assert.ErrorIs(t, r.Stock().Create(ctx, &entity.StockRecord{ID: "r2", ProductID: "p1", WarehouseID: "w1"}), domain.ErrConflict)
}

func TestRepos_BorradoReferenciado(t *testing.T) {
	r := NewStore().Repos()
	ctx := context.Background()
	require.NoError(t, r.Warehouses().Create(ctx, &entity.Warehouse{ID: "w1", StoreID: "s1", Name: "Principal"}))
	require.NoError(t, r.Stock().Create(ctx, &entity.StockRecord{ID: "r1", StoreID: "s1", ProductID: "p1", WarehouseID: "w1"}))

	assert.ErrorIs(t, r.Warehouses().Delete(ctx, "s1", "w1"), domain.ErrConflict)
}

func TestList_PaginaYOrden(t *testing.T) {
	r := NewStore().Repos()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, r.Transfers().Create(ctx, &entity.InternalTransfer{
			ID: id, StoreID: "s1", Status: entity.TransferPending,
			TransferDate: base.AddDate(0, 0, i), CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, total, err := r.Transfers().List(ctx, repository.TransferFilter{StoreID: "s1", Page: repository.Page{Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "t3", list[0].ID)
	assert.Equal(t, "t2", list[1].ID)

	from := base.AddDate(0, 0, 1)
	list, total, err = r.Transfers().List(ctx, repository.TransferFilter{StoreID: "s1", DateRange: repository.DateRange{From: &from}})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	list, _, err = r.Transfers().List(ctx, repository.TransferFilter{StoreID: "s1", Page: repository.Page{Offset: 5}})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInvoices_NextNumber(t *testing.T) {
	r := NewStore().Repos()
	ctx := context.Background()

	n, err := r.Invoices().NextNumber(ctx, "s1", "FV")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, r.Invoices().Create(ctx, &entity.Invoice{ID: "i1", StoreID: "s1", Prefix: "FV", Number: "41"}, nil))
	n, err = r.Invoices().NextNumber(ctx, "s1", "FV")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	err = r.Invoices().Create(ctx, &entity.Invoice{ID: "i2", StoreID: "s1", Prefix: "FV", Number: "41"}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
