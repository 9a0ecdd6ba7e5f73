package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía los protocolos de stock.
type ProductUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repos ports.Repos) *ProductUseCase {
	return &ProductUseCase{repos: repos, now: time.Now}
}

// Create crea un nuevo producto. SKU repetido → ErrDuplicate; tasa fuera de {0,5,19} → ErrInvalidInput.
func (uc *ProductUseCase) Create(ctx context.Context, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repos.Products().GetBySKU(ctx, storeID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: sku %s", domain.ErrDuplicate, in.SKU)
	}
	now := uc.now().UTC()
	product := &entity.Product{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		SKU:            in.SKU,
		Barcode:        strings.TrimSpace(in.Barcode),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		TaxRate:        in.TaxRate,
		UnitID:         in.UnitID,
		ProductGroupID: in.ProductGroupID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.check(ctx, product); err != nil {
		return nil, err
	}
	if err := uc.repos.Products().Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto de la tienda.
func (uc *ProductUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.ProductResponse, error) {
	product, err := uc.repos.Products().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// Update actualiza un producto. Un puntero a "" en unit_id o product_group_id quita la referencia.
func (uc *ProductUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.repos.Products().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		product.TaxRate = *in.TaxRate
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.ProductGroupID != nil {
		product.ProductGroupID = *in.ProductGroupID
	}
	if err := uc.check(ctx, product); err != nil {
		return nil, err
	}
	product.UpdatedAt = uc.now().UTC()
	if err := uc.repos.Products().Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos de la tienda con búsqueda y paginación.
func (uc *ProductUseCase) List(ctx context.Context, storeID string, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	f := repository.ProductFilter{
		StoreID:        storeID,
		Search:         q.Search,
		ProductGroupID: q.ProductGroupID,
		Page:           toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Products().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Products().Delete(ctx, storeID, id)
}

// check valida precio, tasa de IVA y que unidad y grupo pertenezcan a la tienda.
func (uc *ProductUseCase) check(ctx context.Context, p *entity.Product) error {
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if !entity.IsAllowedTaxRate(p.TaxRate) {
		return fmt.Errorf("%w: tax_rate debe ser 0, 5 o 19", domain.ErrInvalidInput)
	}
	if p.UnitID != "" {
		u, err := uc.repos.Units().GetByID(ctx, p.StoreID, p.UnitID)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, p.UnitID)
		}
	}
	if p.ProductGroupID != "" {
		g, err := uc.repos.ProductGroups().GetByID(ctx, p.StoreID, p.ProductGroupID)
		if err != nil {
			return err
		}
		if g == nil {
			return fmt.Errorf("%w: grupo %s", domain.ErrNotFound, p.ProductGroupID)
		}
	}
	return nil
}

// ToProductResponse mapea un producto a su DTO.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		StoreID:        p.StoreID,
		SKU:            p.SKU,
		Barcode:        p.Barcode,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price.Round(2),
		TaxRate:        p.TaxRate,
		UnitID:         p.UnitID,
		ProductGroupID: p.ProductGroupID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

