package labels

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// Tamaños por defecto en píxeles.
const (
	DefaultBarcodeWidth  = 300
	DefaultBarcodeHeight = 100
	DefaultQRSize        = 256
	defaultCopies        = 1
)

// UseCase genera PNG de códigos por producto y hojas PDF de etiquetas.
type UseCase struct {
	repos    ports.Repos
	renderer CodeRenderer
	sheets   SheetGenerator
	cache    CodeCache // nil = sin caché
	ttl      time.Duration
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso. cache puede ser nil.
func NewUseCase(repos ports.Repos, renderer CodeRenderer, sheets SheetGenerator, cache CodeCache, ttl time.Duration, log zerolog.Logger) *UseCase {
	return &UseCase{repos: repos, renderer: renderer, sheets: sheets, cache: cache, ttl: ttl, log: log}
}

// BarcodePNG código de barras del producto. El contenido es el código de barras del producto
// o, si no tiene, su SKU.
func (uc *UseCase) BarcodePNG(ctx context.Context, storeID, productID string, q dto.CodeQuery) ([]byte, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	p, err := uc.product(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	symbology := q.Symbology
	if symbology == "" {
		symbology = dto.SymbologyCode128
	}
	w, h := orDefault(q.Width, DefaultBarcodeWidth), orDefault(q.Height, DefaultBarcodeHeight)
	key := cacheKey(storeID, p.ID, dto.LabelBarcode, fmt.Sprintf("%s:%dx%d:%s", symbology, w, h, codeContent(p)))
	return uc.cached(ctx, key, func() ([]byte, error) {
		return uc.renderer.Barcode(codeContent(p), symbology, w, h)
	})
}

// QRPNG código QR del producto con el mismo contenido que el código de barras.
func (uc *UseCase) QRPNG(ctx context.Context, storeID, productID string, q dto.CodeQuery) ([]byte, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	p, err := uc.product(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	size := orDefault(q.Width, DefaultQRSize)
	key := cacheKey(storeID, p.ID, dto.LabelQR, fmt.Sprintf("%d:%s", size, codeContent(p)))
	return uc.cached(ctx, key, func() ([]byte, error) {
		return uc.renderer.QR(codeContent(p), size)
	})
}

// LabelsPDF hoja de etiquetas con Copies etiquetas por producto, en el orden pedido.
// Un producto ajeno a la tienda corta la operación con ErrNotFound.
func (uc *UseCase) LabelsPDF(ctx context.Context, storeID string, in dto.LabelsRequest) ([]byte, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	copies := in.Copies
	if copies == 0 {
		copies = defaultCopies
	}
	out := make([]Label, 0, len(in.ProductIDs)*copies)
	for _, id := range in.ProductIDs {
		p, err := uc.product(ctx, storeID, id)
		if err != nil {
			return nil, err
		}
		l := Label{Title: p.Name, SKU: p.SKU, Price: "$" + p.Price.StringFixed(0), Content: codeContent(p)}
		for range copies {
			out = append(out, l)
		}
	}
	return uc.sheets.GenerateLabels(ctx, in.Kind, out)
}

func (uc *UseCase) product(ctx context.Context, storeID, id string) (*entity.Product, error) {
	p, err := uc.repos.Products().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return p, nil
}

// cached lee de la caché y si falla o no existe renderiza y guarda. La caché nunca hace
// fallar la petición.
func (uc *UseCase) cached(ctx context.Context, key string, render func() ([]byte, error)) ([]byte, error) {
	if uc.cache != nil {
		b, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("leer caché de códigos")
		} else if b != nil {
			return b, nil
		}
	}
	b, err := render()
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, b, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("guardar en caché de códigos")
		}
	}
	return b, nil
}

func codeContent(p *entity.Product) string {
	if p.Barcode != "" {
		return p.Barcode
	}
	return p.SKU
}

// cacheKey formato code:<store>:<product>:<kind>:<params>. params incluye el contenido para que
// un cambio de SKU o código de barras no sirva un PNG viejo.
func cacheKey(storeID, productID, kind, params string) string {
	return fmt.Sprintf("code:%s:%s:%s:%s", storeID, productID, kind, params)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
