package labels_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Barcode(content, symbology string, width, height int) ([]byte, error) {
	args := m.Called(content, symbology, width, height)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockRenderer) QR(content string, size int) ([]byte, error) {
	args := m.Called(content, size)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type mockSheets struct{ mock.Mock }

func (m *mockSheets) GenerateLabels(ctx context.Context, kind string, ls []labels.Label) ([]byte, error) {
	args := m.Called(ctx, kind, ls)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type mapCache struct {
	data map[string][]byte
	sets int
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) { return c.data[key], nil }

func (c *mapCache) Set(_ context.Context, key string, v []byte, _ time.Duration) error {
	c.sets++
	c.data[key] = v
	return nil
}

func seed(t *testing.T) (ports.Repos, string, string, string) {
	t.Helper()
	repos := memory.NewStore().Repos()
	ctx := context.Background()
	storeID, withBarcode, skuOnly := uuid.NewString(), uuid.NewString(), uuid.NewString()
	require.NoError(t, repos.Stores().Create(ctx, &entity.Store{ID: storeID, Name: "Tienda", Status: entity.StoreStatusActive}))
	require.NoError(t, repos.Products().Create(ctx, &entity.Product{
		ID: withBarcode, StoreID: storeID, SKU: "CAF-500", Barcode: "7702004003508", Name: "Café 500g",
		Price: decimal.NewFromInt(18000), TaxRate: decimal.NewFromInt(19),
	}))
	require.NoError(t, repos.Products().Create(ctx, &entity.Product{
		ID: skuOnly, StoreID: storeID, SKU: "AZU-1000", Name: "Azúcar 1kg",
		Price: decimal.NewFromInt(4500), TaxRate: decimal.NewFromInt(5),
	}))
	return repos, storeID, withBarcode, skuOnly
}

func TestBarcodePNG_UsaCodigoDeBarrasYCachea(t *testing.T) {
	repos, storeID, coffee, _ := seed(t)
	r := new(mockRenderer)
	r.On("Barcode", "7702004003508", "ean13", 300, 100).Return([]byte("png"), nil).Once()
	cache := &mapCache{data: map[string][]byte{}}
	uc := labels.NewUseCase(repos, r, nil, cache, time.Hour, zerolog.Nop())

	q := dto.CodeQuery{Symbology: "ean13"}
	out, err := uc.BarcodePNG(context.Background(), storeID, coffee, q)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), out)

	out, err = uc.BarcodePNG(context.Background(), storeID, coffee, q)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), out)
	assert.Equal(t, 1, cache.sets)
	r.AssertExpectations(t)
}

func TestBarcodePNG_SinCodigoUsaSKU(t *testing.T) {
	repos, storeID, _, sugar := seed(t)
	r := new(mockRenderer)
	r.On("Barcode", "AZU-1000", "code128", 400, 120).Return([]byte("png"), nil)
	uc := labels.NewUseCase(repos, r, nil, nil, 0, zerolog.Nop())

	_, err := uc.BarcodePNG(context.Background(), storeID, sugar, dto.CodeQuery{Width: 400, Height: 120})
	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestBarcodePNG_ProductoDeOtraTienda(t *testing.T) {
	repos, _, coffee, _ := seed(t)
	uc := labels.NewUseCase(repos, new(mockRenderer), nil, nil, 0, zerolog.Nop())

	_, err := uc.BarcodePNG(context.Background(), uuid.NewString(), coffee, dto.CodeQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBarcodePNG_SimbologiaInvalida(t *testing.T) {
	repos, storeID, coffee, _ := seed(t)
	uc := labels.NewUseCase(repos, new(mockRenderer), nil, nil, 0, zerolog.Nop())

	_, err := uc.BarcodePNG(context.Background(), storeID, coffee, dto.CodeQuery{Symbology: "upc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQRPNG_TamañoPorDefecto(t *testing.T) {
	repos, storeID, coffee, _ := seed(t)
	r := new(mockRenderer)
	r.On("QR", "7702004003508", labels.DefaultQRSize).Return([]byte("qr"), nil)
	uc := labels.NewUseCase(repos, r, nil, nil, 0, zerolog.Nop())

	out, err := uc.QRPNG(context.Background(), storeID, coffee, dto.CodeQuery{})
	require.NoError(t, err)
	assert.Equal(t, []byte("qr"), out)
}

func TestLabelsPDF_CopiasEnOrden(t *testing.T) {
	repos, storeID, coffee, sugar := seed(t)
	s := new(mockSheets)
	s.On("GenerateLabels", mock.Anything, dto.LabelQR, mock.MatchedBy(func(ls []labels.Label) bool {
		return len(ls) == 4 &&
			ls[0].SKU == "AZU-1000" && ls[1].SKU == "AZU-1000" &&
			ls[2].Content == "7702004003508" && ls[3].Price == "$18000"
	})).Return([]byte("%PDF"), nil)
	uc := labels.NewUseCase(repos, nil, s, nil, 0, zerolog.Nop())

	out, err := uc.LabelsPDF(context.Background(), storeID, dto.LabelsRequest{
		ProductIDs: []string{sugar, coffee}, Kind: dto.LabelQR, Copies: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	s.AssertExpectations(t)
}

func TestLabelsPDF_ProductoInexistente(t *testing.T) {
	repos, storeID, coffee, _ := seed(t)
	uc := labels.NewUseCase(repos, nil, new(mockSheets), nil, 0, zerolog.Nop())

	_, err := uc.LabelsPDF(context.Background(), storeID, dto.LabelsRequest{
		ProductIDs: []string{coffee, uuid.NewString()}, Kind: dto.LabelBarcode,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
