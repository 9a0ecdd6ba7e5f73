package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	repos     ports.Repos
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(repos ports.Repos, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repos: repos, generator: generator}
}

// DownloadInvoicePDF recupera la factura con su detalle y la tienda emisora y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe en la tienda del token.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, storeID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, details, err := uc.repos.Invoices().GetByID(ctx, storeID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	store, err := uc.repos.Stores().GetByID(ctx, storeID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, store, details)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s%s.pdf", inv.Prefix, inv.Number)
	return pdfBytes, filename, nil
}
