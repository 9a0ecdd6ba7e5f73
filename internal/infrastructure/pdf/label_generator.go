package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
)

// labelsPerRow etiquetas por fila en la hoja A4 (grid de 12 columnas).
const labelsPerRow = 3

var _ labels.SheetGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa labels.SheetGenerator: hoja A4 con etiquetas de 3 columnas.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabels genera la hoja. kind decide si cada etiqueta lleva código de barras o QR.
func (g *MarotoLabelGenerator) GenerateLabels(_ context.Context, kind string, ls []labels.Label) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas", true).
		Build()

	m := maroto.New(cfg)
	for i := 0; i < len(ls); i += labelsPerRow {
		end := min(i+labelsPerRow, len(ls))
		m.AddRows(labelRow(kind, ls[i:end]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

func labelRow(kind string, ls []labels.Label) core.Row {
	height := 32.0
	if kind == dto.LabelQR {
		height = 40
	}
	cols := make([]core.Col, 0, labelsPerRow)
	for _, l := range ls {
		cols = append(cols, labelCol(kind, l))
	}
	// Completar la fila para que las etiquetas mantengan su ancho.
	for len(cols) < labelsPerRow {
		cols = append(cols, col.New(12/labelsPerRow))
	}
	return row.New(height).Add(cols...)
}

func labelCol(kind string, l labels.Label) core.Col {
	c := col.New(12 / labelsPerRow).WithStyle(&props.Cell{
		BorderType:  border.Full,
		BorderColor: colorGray,
	})
	c.Add(
		text.New(l.Title, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1}),
		text.New(l.SKU+"   "+l.Price, props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorGray}),
	)
	if kind == dto.LabelQR {
		c.Add(code.NewQr(l.Content, props.Rect{Top: 10, Percent: 70, Center: true}))
		return c
	}
	c.Add(
		code.NewBar(l.Content, props.Barcode{Top: 10, Percent: 80, Center: true}),
		text.New(l.Content, props.Text{Size: 7, Align: align.Center, Top: 26}),
	)
	return c
}
