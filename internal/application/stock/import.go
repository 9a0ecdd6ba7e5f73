package stock

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

// Import crea los lotes uno a uno, en orden, cada uno en su propia transacción.
// El fallo de un ítem se registra en su resultado y no afecta a los demás; la llamada
// nunca falla. results[i] corresponde a items[i].
func (uc *StockLotUseCase) Import(ctx context.Context, storeID, userID string, items []dto.CreateStockLotRequest) []dto.ImportResult {
	ctx, span := tracing.Start(ctx, "stock.lot.import")
	defer span.End()

	results := make([]dto.ImportResult, 0, len(items))
	for i, item := range items {
		results = append(results, uc.importOne(ctx, storeID, userID, i, item))
	}
	return results
}

func (uc *StockLotUseCase) importOne(ctx context.Context, storeID, userID string, index int, item dto.CreateStockLotRequest) dto.ImportResult {
	out, err := uc.Create(ctx, storeID, userID, item)
	uc.obs.ObserveImportItem(err)
	if err != nil {
		uc.log.Warn().Err(err).Int("index", index).Str("lot_reference_no", item.LotReferenceNo).Msg("ítem de importación rechazado")
		return dto.ImportResult{Success: false, Data: item, Error: err.Error()}
	}
	return dto.ImportResult{Success: true, Data: out}
}

// Summarize cuenta éxitos y fallos de una importación.
func Summarize(results []dto.ImportResult) dto.ImportResponse {
	resp := dto.ImportResponse{Results: results}
	for _, r := range results {
		if r.Success {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp
}
