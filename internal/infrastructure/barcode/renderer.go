// Package barcode renderiza códigos de barras y QR como PNG con boombuler/barcode.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

var _ labels.CodeRenderer = (*PNGRenderer)(nil)

// PNGRenderer implementa labels.CodeRenderer.
type PNGRenderer struct{}

// NewPNGRenderer construye el renderer.
func NewPNGRenderer() *PNGRenderer { return &PNGRenderer{} }

// Barcode codifica content con la simbología pedida y lo escala a width x height.
// Un contenido que la simbología no acepta (ej: EAN-13 con letras) es ErrInvalidInput.
func (r *PNGRenderer) Barcode(content, symbology string, width, height int) ([]byte, error) {
	var (
		bc  barcode.Barcode
		err error
	)
	switch symbology {
	case dto.SymbologyEAN13:
		bc, err = ean.Encode(content)
	case dto.SymbologyCode128, "":
		bc, err = code128.Encode(content)
	default:
		return nil, fmt.Errorf("%w: simbología %q", domain.ErrInvalidInput, symbology)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s no es codificable en %s: %v", domain.ErrInvalidInput, content, symbology, err)
	}
	return encode(bc, width, height)
}

// QR codifica content con corrección de errores media en un cuadrado de size px.
func (r *PNGRenderer) QR(content string, size int) ([]byte, error) {
	bc, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: qr: %v", domain.ErrInvalidInput, err)
	}
	return encode(bc, size, size)
}

func encode(bc barcode.Barcode, width, height int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		// boombuler no reduce por debajo del ancho en módulos del código.
		return nil, fmt.Errorf("%w: tamaño %dx%d: %v", domain.ErrInvalidInput, width, height, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("codificar png: %w", err)
	}
	return buf.Bytes(), nil
}
