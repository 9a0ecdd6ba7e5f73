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

// ProductGroupUseCase grupos de productos.
type ProductGroupUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

func NewProductGroupUseCase(repos ports.Repos) *ProductGroupUseCase {
	return &ProductGroupUseCase{repos: repos, now: time.Now}
}

func (uc *ProductGroupUseCase) Create(ctx context.Context, storeID string, in dto.CreateProductGroupRequest) (*dto.ProductGroupResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	g := &entity.ProductGroup{ID: uuid.New().String(), StoreID: storeID, Name: in.Name, Description: in.Description, CreatedAt: now, UpdatedAt: now}
	if err := uc.repos.ProductGroups().Create(ctx, g); err != nil {
		return nil, err
	}
	return toProductGroupResponse(g), nil
}

func (uc *ProductGroupUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.ProductGroupResponse, error) {
	g, err := uc.repos.ProductGroups().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return toProductGroupResponse(g), nil
}

func (uc *ProductGroupUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateProductGroupRequest) (*dto.ProductGroupResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	g, err := uc.repos.ProductGroups().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	g.UpdatedAt = uc.now().UTC()
	if err := uc.repos.ProductGroups().Update(ctx, g); err != nil {
		return nil, err
	}
	return toProductGroupResponse(g), nil
}

func (uc *ProductGroupUseCase) List(ctx context.Context, storeID string, q dto.CatalogListQuery) (*dto.ProductGroupListResponse, error) {
	f := repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: toPage(q.PageRequest)}
	list, total, err := uc.repos.ProductGroups().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductGroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toProductGroupResponse(g))
	}
	return &dto.ProductGroupListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

func (uc *ProductGroupUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.ProductGroups().Delete(ctx, storeID, id)
}

func toProductGroupResponse(g *entity.ProductGroup) *dto.ProductGroupResponse {
	return &dto.ProductGroupResponse{
		ID:          g.ID,
		StoreID:     g.StoreID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
