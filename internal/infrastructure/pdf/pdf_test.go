package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0", formatMoney("0"))
	assert.Equal(t, "999", formatMoney("999"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "-1.000.000", formatMoney("-1000000"))
}

func TestGenerateInvoicePDF(t *testing.T) {
	inv := &entity.Invoice{
		ID: "8c1b6a8e-7f1e-4a8b-9b43-1f0c7c2f3a11", Prefix: "FV", Number: "1",
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		NetTotal: decimal.NewFromInt(63000), TaxTotal: decimal.NewFromInt(10710), GrandTotal: decimal.NewFromInt(73710),
		CustomerName: "Cliente Mostrador", CustomerTaxID: "222222222",
	}
	store := &entity.Store{Name: "Tienda Centro", TaxID: "900123456"}
	details := []*entity.InvoiceDetail{
		{ProductName: "Café 500g", Quantity: 3, UnitPrice: decimal.NewFromInt(18000), TaxRate: decimal.NewFromInt(19), Subtotal: decimal.NewFromInt(54000)},
		{ProductName: "Azúcar 1kg", Quantity: 2, UnitPrice: decimal.NewFromInt(4500), TaxRate: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(9000)},
	}

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv, store, details)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateLabels(t *testing.T) {
	ls := []labels.Label{
		{Title: "Café 500g", SKU: "CAF-500", Price: "$18000", Content: "7702004003508"},
		{Title: "Azúcar 1kg", SKU: "AZU-1000", Price: "$4500", Content: "AZU-1000"},
		{Title: "Arroz", SKU: "ARR-500", Price: "$3200", Content: "ARR-500"},
		{Title: "Sal", SKU: "SAL-1", Price: "$1500", Content: "SAL-1"},
	}
	for _, kind := range []string{dto.LabelBarcode, dto.LabelQR} {
		out, err := NewMarotoLabelGenerator().GenerateLabels(context.Background(), kind, ls)
		require.NoError(t, err, kind)
		assert.Equal(t, "%PDF", string(out[:4]), kind)
	}
}
