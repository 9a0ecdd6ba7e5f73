package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/taxid"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repos ports.Repos) *SupplierUseCase {
	return &SupplierUseCase{repos: repos, now: time.Now}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, storeID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := taxid.Validate(in.TaxID); err != nil {
		return nil, fmt.Errorf("%w: tax_id: %v", domain.ErrInvalidInput, err)
	}
	now := uc.now().UTC()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repos.Suppliers().Create(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

// GetByID obtiene un proveedor de la tienda.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.SupplierResponse, error) {
	s, err := uc.repos.Suppliers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToSupplierResponse(s), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.repos.Suppliers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.TaxID != nil {
		if err := taxid.Validate(*in.TaxID); err != nil {
			return nil, fmt.Errorf("%w: tax_id: %v", domain.ErrInvalidInput, err)
		}
		s.TaxID = *in.TaxID
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	s.UpdatedAt = uc.now().UTC()
	if err := uc.repos.Suppliers().Update(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

// List lista proveedores de la tienda.
func (uc *SupplierUseCase) List(ctx context.Context, storeID string, q dto.CatalogListQuery) (*dto.SupplierListResponse, error) {
	f := repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: toPage(q.PageRequest)}
	list, total, err := uc.repos.Suppliers().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

// Delete elimina un proveedor. Con lotes asociados → ErrConflict.
func (uc *SupplierUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Suppliers().Delete(ctx, storeID, id)
}

// ToSupplierResponse mapea un proveedor a su DTO.
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
