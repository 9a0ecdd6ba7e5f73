// Package labels genera los códigos de barras y QR de los productos y las hojas de etiquetas.
package labels

import (
	"context"
	"time"
)

// Label una etiqueta de la hoja: nombre del producto, SKU, precio y el contenido del código.
type Label struct {
	Title   string
	SKU     string
	Price   string
	Content string
}

// CodeRenderer renderiza códigos como PNG (implementado por infrastructure/barcode).
type CodeRenderer interface {
	Barcode(content, symbology string, width, height int) ([]byte, error)
	QR(content string, size int) ([]byte, error)
}

// SheetGenerator genera una hoja PDF de etiquetas (implementado por infrastructure/pdf).
// kind es dto.LabelBarcode o dto.LabelQR.
type SheetGenerator interface {
	GenerateLabels(ctx context.Context, kind string, labels []Label) ([]byte, error)
}

// CodeCache guarda los PNG ya renderizados. Get devuelve (nil, nil) si la clave no existe.
type CodeCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
