package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

func newRepos(t *testing.T) (ports.Repos, string) {
	t.Helper()
	repos := memory.NewStore().Repos()
	storeID := uuid.NewString()
	require.NoError(t, repos.Stores().Create(context.Background(), &entity.Store{ID: storeID, Name: "Tienda Centro"}))
	return repos, storeID
}

func TestWarehouseUseCase_CRUD(t *testing.T) {
	repos, storeID := newRepos(t)
	uc := usecase.NewWarehouseUseCase(repos)
	ctx := context.Background()

	w, err := uc.Create(ctx, storeID, dto.CreateWarehouseRequest{Name: "Principal", Address: "Cra 7 # 12-30"})
	require.NoError(t, err)
	assert.Equal(t, storeID, w.StoreID)

	_, err = uc.Create(ctx, storeID, dto.CreateWarehouseRequest{Name: "principal"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, storeID, dto.CreateWarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	name := "Bodega Principal"
	upd, err := uc.Update(ctx, w.ID, storeID, dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, upd.Name)
	assert.Equal(t, "Cra 7 # 12-30", upd.Address)

	_, err = uc.GetByID(ctx, w.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, storeID, dto.CatalogListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, dto.DefaultLimit, list.Page.Limit)

	require.NoError(t, uc.Delete(ctx, w.ID, storeID))
	assert.ErrorIs(t, uc.Delete(ctx, w.ID, storeID), domain.ErrNotFound)
}

func TestProductUseCase_Create(t *testing.T) {
	repos, storeID := newRepos(t)
	units := usecase.NewUnitUseCase(repos)
	groups := usecase.NewProductGroupUseCase(repos)
	uc := usecase.NewProductUseCase(repos)
	ctx := context.Background()

	unit, err := units.Create(ctx, storeID, dto.CreateUnitRequest{Name: "Unidad", ShortName: "UND"})
	require.NoError(t, err)
	group, err := groups.Create(ctx, storeID, dto.CreateProductGroupRequest{Name: "Bebidas"})
	require.NoError(t, err)

	p, err := uc.Create(ctx, storeID, dto.CreateProductRequest{
		SKU: "CAF-500", Barcode: "7701234567890", Name: "Café 500g",
		Price: decimal.NewFromInt(18000), TaxRate: decimal.NewFromInt(19),
		UnitID: unit.ID, ProductGroupID: group.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "18000", p.Price.String())
	assert.Equal(t, unit.ID, p.UnitID)

	cases := []struct {
		name string
		in   dto.CreateProductRequest
		want error
	}{
		{"sku repetido", dto.CreateProductRequest{SKU: "CAF-500", Name: "Otro"}, domain.ErrDuplicate},
		{"código de barras repetido", dto.CreateProductRequest{SKU: "CAF-250", Barcode: "7701234567890", Name: "Café 250g"}, domain.ErrDuplicate},
		{"tasa no permitida", dto.CreateProductRequest{SKU: "X-1", Name: "X", TaxRate: decimal.NewFromInt(16)}, domain.ErrInvalidInput},
		{"precio negativo", dto.CreateProductRequest{SKU: "X-2", Name: "X", Price: decimal.NewFromInt(-1)}, domain.ErrInvalidInput},
		{"unidad ajena", dto.CreateProductRequest{SKU: "X-3", Name: "X", UnitID: uuid.NewString()}, domain.ErrNotFound},
		{"grupo ajeno", dto.CreateProductRequest{SKU: "X-4", Name: "X", ProductGroupID: uuid.NewString()}, domain.ErrNotFound},
		{"sin nombre", dto.CreateProductRequest{SKU: "X-5"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, storeID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProductUseCase_UpdateYList(t *testing.T) {
	repos, storeID := newRepos(t)
	uc := usecase.NewProductUseCase(repos)
	ctx := context.Background()

	p, err := uc.Create(ctx, storeID, dto.CreateProductRequest{SKU: "CAF-500", Name: "Café 500g", Price: decimal.NewFromInt(18000)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, storeID, dto.CreateProductRequest{SKU: "AZU-1000", Name: "Azúcar 1kg"})
	require.NoError(t, err)

	rate := decimal.NewFromInt(5)
	upd, err := uc.Update(ctx, p.ID, storeID, dto.UpdateProductRequest{TaxRate: &rate})
	require.NoError(t, err)
	assert.True(t, upd.TaxRate.Equal(rate))
	assert.Equal(t, "CAF-500", upd.SKU)

	bad := decimal.NewFromInt(7)
	_, err = uc.Update(ctx, p.ID, storeID, dto.UpdateProductRequest{TaxRate: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx, storeID, dto.ProductListQuery{Search: "caf"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, p.ID, list.Items[0].ID)

	all, err := uc.List(ctx, storeID, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Page.Total)
	assert.Equal(t, "Azúcar 1kg", all.Items[0].Name)
}

func TestUnitUseCase_ShortNameUnico(t *testing.T) {
	repos, storeID := newRepos(t)
	uc := usecase.NewUnitUseCase(repos)
	ctx := context.Background()

	_, err := uc.Create(ctx, storeID, dto.CreateUnitRequest{Name: "Kilogramo", ShortName: "KG"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, storeID, dto.CreateUnitRequest{Name: "Kilo", ShortName: "kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, otherStore := newRepos(t)
	_, err = uc.Create(ctx, otherStore, dto.CreateUnitRequest{Name: "Kilogramo", ShortName: "KG"})
	assert.NoError(t, err, "la unicidad es por tienda")
}

func TestUnitUseCase_BorrarReferenciadaEsConflicto(t *testing.T) {
	repos, storeID := newRepos(t)
	units := usecase.NewUnitUseCase(repos)
	products := usecase.NewProductUseCase(repos)
	ctx := context.Background()

	u, err := units.Create(ctx, storeID, dto.CreateUnitRequest{Name: "Caja", ShortName: "CJ"})
	require.NoError(t, err)
	_, err = products.Create(ctx, storeID, dto.CreateProductRequest{SKU: "GAL-12", Name: "Galletas x12", UnitID: u.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, units.Delete(ctx, u.ID, storeID), domain.ErrConflict)
}

func TestProductGroupUseCase(t *testing.T) {
	repos, storeID := newRepos(t)
	uc := usecase.NewProductGroupUseCase(repos)
	ctx := context.Background()

	g, err := uc.Create(ctx, storeID, dto.CreateProductGroupRequest{Name: "Aseo", Description: "Limpieza del hogar"})
	require.NoError(t, err)
	desc := "Aseo y limpieza"
	upd, err := uc.Update(ctx, g.ID, storeID, dto.UpdateProductGroupRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, upd.Description)

	got, err := uc.GetByID(ctx, g.ID, storeID)
	require.NoError(t, err)
	assert.Equal(t, "Aseo", got.Name)
	require.NoError(t, uc.Delete(ctx, g.ID, storeID))
}

func TestSupplierUseCase(t *testing.T) {
	repos, storeID := newRepos(t)
	uc := usecase.NewSupplierUseCase(repos)
	ctx := context.Background()

	s, err := uc.Create(ctx, storeID, dto.CreateSupplierRequest{Name: "Distribuidora Andina", Email: "ventas@andina.co"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, storeID, dto.CreateSupplierRequest{Name: "Mal correo", Email: "no-es-correo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	phone := "3001234567"
	upd, err := uc.Update(ctx, s.ID, storeID, dto.UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, upd.Phone)
	assert.Equal(t, "ventas@andina.co", upd.Email)

	_, err = uc.Update(ctx, s.ID, uuid.NewString(), dto.UpdateSupplierRequest{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, storeID, dto.CatalogListQuery{Search: "andina"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
