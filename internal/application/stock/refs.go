package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// Las referencias de un documento deben pertenecer a la tienda del caller; un ID ajeno
// se reporta igual que uno inexistente.

func requireWarehouse(ctx context.Context, r ports.Repos, storeID, id string) (*entity.Warehouse, error) {
	w, err := r.Warehouses().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return w, nil
}

func requireProduct(ctx context.Context, r ports.Repos, storeID, id string) (*entity.Product, error) {
	p, err := r.Products().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func requireSupplier(ctx context.Context, r ports.Repos, storeID, id string) (*entity.Supplier, error) {
	s, err := r.Suppliers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return s, nil
}
