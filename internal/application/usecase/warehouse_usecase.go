package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repos ports.Repos) *WarehouseUseCase {
	return &WarehouseUseCase{repos: repos, now: time.Now}
}

// Create crea una nueva bodega. Nombre repetido en la tienda → ErrDuplicate.
func (uc *WarehouseUseCase) Create(ctx context.Context, storeID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repos.Warehouses().Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega de la tienda.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repos.Warehouses().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	warehouse, err := uc.repos.Warehouses().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	warehouse.UpdatedAt = uc.now().UTC()
	if err := uc.repos.Warehouses().Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas de la tienda con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, storeID string, q dto.CatalogListQuery) (*dto.WarehouseListResponse, error) {
	f := repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: toPage(q.PageRequest)}
	list, total, err := uc.repos.Warehouses().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

// Delete elimina una bodega. Con stock o documentos asociados → ErrConflict.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Warehouses().Delete(ctx, storeID, id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		StoreID:   w.StoreID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
