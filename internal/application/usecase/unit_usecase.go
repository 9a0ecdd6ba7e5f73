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

// UnitUseCase unidades de medida.
type UnitUseCase struct {
	repos ports.Repos
	now   func() time.Time
}

func NewUnitUseCase(repos ports.Repos) *UnitUseCase {
	return &UnitUseCase{repos: repos, now: time.Now}
}

func (uc *UnitUseCase) Create(ctx context.Context, storeID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	u := &entity.Unit{ID: uuid.New().String(), StoreID: storeID, Name: in.Name, ShortName: in.ShortName, CreatedAt: now, UpdatedAt: now}
	if err := uc.repos.Units().Create(ctx, u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

func (uc *UnitUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.UnitResponse, error) {
	u, err := uc.repos.Units().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(u), nil
}

func (uc *UnitUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.repos.Units().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.ShortName != nil {
		u.ShortName = *in.ShortName
	}
	u.UpdatedAt = uc.now().UTC()
	if err := uc.repos.Units().Update(ctx, u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

func (uc *UnitUseCase) List(ctx context.Context, storeID string, q dto.CatalogListQuery) (*dto.UnitListResponse, error) {
	f := repository.CatalogFilter{StoreID: storeID, Search: q.Search, Page: toPage(q.PageRequest)}
	list, total, err := uc.repos.Units().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

func (uc *UnitUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Units().Delete(ctx, storeID, id)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, StoreID: u.StoreID, Name: u.Name, ShortName: u.ShortName, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
