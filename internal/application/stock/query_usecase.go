package stock

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// QueryUseCase lecturas de niveles de stock y del kardex.
type QueryUseCase struct {
	repos ports.Repos
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repos ports.Repos) *QueryUseCase {
	return &QueryUseCase{repos: repos}
}

// ListStock lista niveles de stock de la tienda.
func (uc *QueryUseCase) ListStock(ctx context.Context, storeID string, q dto.StockListQuery) (*dto.StockListResponse, error) {
	f := repository.StockFilter{
		StoreID:           storeID,
		WarehouseID:       q.WarehouseID,
		ProductID:         q.ProductID,
		LowStockThreshold: q.LowStockThreshold,
		Page:              toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Stock().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, ToStockRecordResponse(r))
	}
	return &dto.StockListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

// GetStock obtiene el nivel de un producto en una bodega de la tienda.
// Sin registro devuelve cantidad 0 y costo nulo.
func (uc *QueryUseCase) GetStock(ctx context.Context, storeID, productID, warehouseID string) (*dto.StockRecordResponse, error) {
	p, err := uc.repos.Products().GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	w, err := uc.repos.Warehouses().GetByID(ctx, storeID, warehouseID)
	if err != nil {
		return nil, err
	}
	if p == nil || w == nil {
		return nil, domain.ErrNotFound
	}
	rec, err := uc.repos.Stock().Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &dto.StockRecordResponse{
			ProductID:     p.ID,
			ProductName:   p.Name,
			ProductSKU:    p.SKU,
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
		}, nil
	}
	out := ToStockRecordResponse(rec)
	out.ProductName, out.ProductSKU, out.WarehouseName = p.Name, p.SKU, w.Name
	return &out, nil
}

// ListMovements lista el kardex de la tienda.
func (uc *QueryUseCase) ListMovements(ctx context.Context, storeID string, q dto.MovementListQuery) (*dto.StockMovementListResponse, error) {
	f := repository.MovementFilter{
		StoreID:     storeID,
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		Type:        q.Type,
		DateRange:   toDateRange(q.DateRangeQuery),
		Page:        toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Movements().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.StockMovementListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}
