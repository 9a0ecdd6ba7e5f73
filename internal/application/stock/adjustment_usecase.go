package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

// AdjustmentUseCase ajustes de inventario. El efecto se aplica al crear, sin estado pendiente.
// Editar o eliminar un ajuste solo toca el documento: el stock ya ajustado no se recalcula.
type AdjustmentUseCase struct {
	tx     ports.TxRunner
	repos  ports.Repos
	ledger *Ledger
	obs    ports.MutationObserver
	log    zerolog.Logger
	now    func() time.Time
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(tx ports.TxRunner, repos ports.Repos, l *Ledger, obs ports.MutationObserver, log zerolog.Logger) *AdjustmentUseCase {
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &AdjustmentUseCase{tx: tx, repos: repos, ledger: l, obs: obs, log: log, now: time.Now}
}

// Create persiste el ajuste y aplica el delta con piso en 0 en la misma transacción.
func (uc *AdjustmentUseCase) Create(ctx context.Context, storeID, userID string, in dto.CreateAdjustmentRequest) (_ *dto.AdjustmentResponse, err error) {
	ctx, span := tracing.Start(ctx, "stock.adjustment.create")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentAdjustment, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	a := &entity.StockAdjustment{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		WarehouseID:    in.WarehouseID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		Type:           entity.AdjustmentType(in.Type),
		AdjustmentDate: in.AdjustmentDate,
		ReferenceNo:    in.ReferenceNo,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var saved *entity.StockAdjustment
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		if err := checkAdjustmentRefs(ctx, r, a); err != nil {
			return err
		}
		if err := r.Adjustments().Create(ctx, a); err != nil {
			return err
		}
		ref := MovementRef{StoreID: storeID, DocumentType: entity.DocumentAdjustment, DocumentID: a.ID, CreatedBy: userID, At: now}
		if err := uc.ledger.Adjust(ctx, r, a, ref); err != nil {
			return err
		}
		var err error
		saved, err = r.Adjustments().GetByID(ctx, storeID, a.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("adjustment_id", a.ID).Str("type", string(a.Type)).Int64("quantity", a.Quantity).Msg("ajuste aplicado")
	return ToAdjustmentResponse(saved), nil
}

// Update modifica solo el documento del ajuste; no recalcula ni revierte stock.
func (uc *AdjustmentUseCase) Update(ctx context.Context, id, storeID string, in dto.UpdateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var saved *entity.StockAdjustment
	err := uc.tx.Run(ctx, func(r ports.Repos) error {
		cur, err := r.Adjustments().GetForUpdate(ctx, storeID, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		next := *cur
		patchAdjustment(&next, in)
		if err := checkAdjustmentRefs(ctx, r, &next); err != nil {
			return err
		}
		next.UpdatedAt = uc.now().UTC()
		if err := r.Adjustments().Update(ctx, &next); err != nil {
			return err
		}
		saved, err = r.Adjustments().GetByID(ctx, storeID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToAdjustmentResponse(saved), nil
}

// Delete elimina el documento del ajuste; el stock no cambia.
func (uc *AdjustmentUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Adjustments().Delete(ctx, storeID, id)
}

// GetByID obtiene un ajuste de la tienda.
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.AdjustmentResponse, error) {
	a, err := uc.repos.Adjustments().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return ToAdjustmentResponse(a), nil
}

// List lista ajustes de la tienda con filtros y paginación.
func (uc *AdjustmentUseCase) List(ctx context.Context, storeID string, q dto.AdjustmentListQuery) (*dto.AdjustmentListResponse, error) {
	if q.Type != "" && !entity.AdjustmentType(q.Type).Valid() {
		return nil, fmt.Errorf("%w: type %q", domain.ErrInvalidInput, q.Type)
	}
	f := repository.AdjustmentFilter{
		StoreID:     storeID,
		Type:        entity.AdjustmentType(q.Type),
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		DateRange:   toDateRange(q.DateRangeQuery),
		Page:        toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Adjustments().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *ToAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

func checkAdjustmentRefs(ctx context.Context, r ports.Repos, a *entity.StockAdjustment) error {
	if _, err := requireWarehouse(ctx, r, a.StoreID, a.WarehouseID); err != nil {
		return err
	}
	_, err := requireProduct(ctx, r, a.StoreID, a.ProductID)
	return err
}

func patchAdjustment(a *entity.StockAdjustment, in dto.UpdateAdjustmentRequest) {
	if in.WarehouseID != nil {
		a.WarehouseID = *in.WarehouseID
	}
	if in.ProductID != nil {
		a.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		a.Quantity = *in.Quantity
	}
	if in.Type != nil {
		a.Type = entity.AdjustmentType(*in.Type)
	}
	if in.AdjustmentDate != nil {
		a.AdjustmentDate = *in.AdjustmentDate
	}
	if in.ReferenceNo != nil {
		a.ReferenceNo = *in.ReferenceNo
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
}
