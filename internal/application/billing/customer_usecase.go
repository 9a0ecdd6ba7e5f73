package billing

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

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repos ports.Repos) *CustomerUseCase {
	return &CustomerUseCase{repos: repos, now: time.Now}
}

// Create crea un nuevo cliente. NIT repetido en la tienda → ErrDuplicate.
func (uc *CustomerUseCase) Create(ctx context.Context, storeID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := checkTaxID(in.TaxID); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	customer := &entity.Customer{
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
	if err := uc.repos.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la tienda.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repos.Customers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(customer), nil
}

// Update actualiza un cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.repos.Customers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.TaxID != nil {
		if err := checkTaxID(*in.TaxID); err != nil {
			return nil, err
		}
		customer.TaxID = *in.TaxID
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	customer.UpdatedAt = uc.now().UTC()
	if err := uc.repos.Customers().Update(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List lista clientes de la tienda con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, storeID string, q dto.CatalogListQuery) (*dto.CustomerListResponse, error) {
	q.DefaultPage()
	f := repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: repository.Page{Limit: q.Limit, Offset: q.Offset}}
	list, total, err := uc.repos.Customers().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Delete elimina un cliente. Con facturas asociadas → ErrConflict.
func (uc *CustomerUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Customers().Delete(ctx, storeID, id)
}

// checkTaxID un NIT escrito con dígito de verificación debe ser consistente.
func checkTaxID(id string) error {
	if err := taxid.Validate(id); err != nil {
		return fmt.Errorf("%w: tax_id: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ToCustomerResponse mapea un cliente a su DTO.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
