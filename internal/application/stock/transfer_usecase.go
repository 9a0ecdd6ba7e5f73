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
	ledger "github.com/jhoicas/backoffice-api/internal/domain/stock"
	"github.com/jhoicas/backoffice-api/pkg/tracing"
)

// TransferUseCase traslados entre bodegas. El stock se mueve una única vez, en la misma
// transacción en que el documento entra en COMPLETED.
type TransferUseCase struct {
	tx     ports.TxRunner
	repos  ports.Repos
	ledger *Ledger
	obs    ports.MutationObserver
	log    zerolog.Logger
	now    func() time.Time
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(tx ports.TxRunner, repos ports.Repos, l *Ledger, obs ports.MutationObserver, log zerolog.Logger) *TransferUseCase {
	if obs == nil {
		obs = ports.NopObserver{}
	}
	return &TransferUseCase{tx: tx, repos: repos, ledger: l, obs: obs, log: log, now: time.Now}
}

// Create valida, persiste el traslado y, si nace COMPLETED, mueve el stock.
// Si el origen no alcanza la transacción completa se revierte y el traslado no queda guardado.
func (uc *TransferUseCase) Create(ctx context.Context, storeID, userID string, in dto.CreateTransferRequest) (_ *dto.TransferResponse, err error) {
	ctx, span := tracing.Start(ctx, "stock.transfer.create")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentTransfer, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrSameWarehouse
	}
	if in.CostForTransfer != nil && in.CostForTransfer.IsNegative() {
		return nil, fmt.Errorf("%w: cost_for_transfer no puede ser negativo", domain.ErrInvalidInput)
	}
	status := entity.TransferStatus(in.Status)
	if status == "" {
		status = entity.TransferPending
	}

	now := uc.now().UTC()
	t := &entity.InternalTransfer{
		ID:              uuid.New().String(),
		StoreID:         storeID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		Status:          status,
		ReferenceNo:     in.ReferenceNo,
		TransferDate:    in.TransferDate,
		CostForTransfer: toNullDecimal(in.CostForTransfer),
		Notes:           in.Notes,
		CreatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var saved *entity.InternalTransfer
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		if err := checkTransferRefs(ctx, r, t); err != nil {
			return err
		}
		if err := r.Transfers().Create(ctx, t); err != nil {
			return err
		}
		if ledger.TransferActivates("", t.Status) {
			if err := uc.ledger.Transfer(ctx, r, t, transferRef(t, userID, now)); err != nil {
				return err
			}
		}
		var err error
		saved, err = r.Transfers().GetByID(ctx, storeID, t.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("transfer_id", t.ID).Str("status", string(t.Status)).Msg("traslado creado")
	return ToTransferResponse(saved), nil
}

// Update aplica los cambios sobre el traslado bloqueado (FOR UPDATE) y mueve el stock solo
// si el estado pasa de no completado a COMPLETED. Re-guardar un traslado ya completado
// nunca repite el movimiento; sacarlo de COMPLETED se rechaza con ErrConflict.
func (uc *TransferUseCase) Update(ctx context.Context, id, storeID, userID string, in dto.UpdateTransferRequest) (_ *dto.TransferResponse, err error) {
	ctx, span := tracing.Start(ctx, "stock.transfer.update")
	defer func() {
		tracing.End(span, err)
		uc.obs.ObserveMutation(entity.DocumentTransfer, err)
	}()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.CostForTransfer != nil && in.CostForTransfer.IsNegative() {
		return nil, fmt.Errorf("%w: cost_for_transfer no puede ser negativo", domain.ErrInvalidInput)
	}

	var saved *entity.InternalTransfer
	err = uc.tx.Run(ctx, func(r ports.Repos) error {
		cur, err := r.Transfers().GetForUpdate(ctx, storeID, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		next := *cur
		patchTransfer(&next, in)
		if next.FromWarehouseID == next.ToWarehouseID {
			return domain.ErrSameWarehouse
		}
		if ledger.LeavesGate(cur.Status, next.Status, entity.TransferCompleted) {
			return fmt.Errorf("%w: el traslado ya fue completado", domain.ErrConflict)
		}
		if err := checkTransferRefs(ctx, r, &next); err != nil {
			return err
		}
		now := uc.now().UTC()
		next.UpdatedAt = now
		if err := r.Transfers().Update(ctx, &next); err != nil {
			return err
		}
		if ledger.TransferActivates(cur.Status, next.Status) {
			if err := uc.ledger.Transfer(ctx, r, &next, transferRef(&next, userID, now)); err != nil {
				return err
			}
		}
		saved, err = r.Transfers().GetByID(ctx, storeID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToTransferResponse(saved), nil
}

// Delete elimina el traslado de la tienda. No revierte un movimiento ya aplicado.
func (uc *TransferUseCase) Delete(ctx context.Context, id, storeID string) error {
	return uc.repos.Transfers().Delete(ctx, storeID, id)
}

// GetByID obtiene un traslado de la tienda.
func (uc *TransferUseCase) GetByID(ctx context.Context, id, storeID string) (*dto.TransferResponse, error) {
	t, err := uc.repos.Transfers().GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return ToTransferResponse(t), nil
}

// List lista traslados de la tienda con filtros y paginación.
func (uc *TransferUseCase) List(ctx context.Context, storeID string, q dto.TransferListQuery) (*dto.TransferListResponse, error) {
	if q.Status != "" && !entity.TransferStatus(q.Status).Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, q.Status)
	}
	f := repository.TransferFilter{
		StoreID:     storeID,
		Status:      entity.TransferStatus(q.Status),
		WarehouseID: q.WarehouseID,
		ProductID:   q.ProductID,
		DateRange:   toDateRange(q.DateRangeQuery),
		Page:        toPage(q.PageRequest),
	}
	list, total, err := uc.repos.Transfers().List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTransferResponse(t))
	}
	return &dto.TransferListResponse{Items: items, Page: pageResponse(f.Page, total)}, nil
}

func checkTransferRefs(ctx context.Context, r ports.Repos, t *entity.InternalTransfer) error {
	if _, err := requireWarehouse(ctx, r, t.StoreID, t.FromWarehouseID); err != nil {
		return err
	}
	if _, err := requireWarehouse(ctx, r, t.StoreID, t.ToWarehouseID); err != nil {
		return err
	}
	_, err := requireProduct(ctx, r, t.StoreID, t.ProductID)
	return err
}

func patchTransfer(t *entity.InternalTransfer, in dto.UpdateTransferRequest) {
	if in.FromWarehouseID != nil {
		t.FromWarehouseID = *in.FromWarehouseID
	}
	if in.ToWarehouseID != nil {
		t.ToWarehouseID = *in.ToWarehouseID
	}
	if in.ProductID != nil {
		t.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		t.Quantity = *in.Quantity
	}
	if in.Status != nil {
		t.Status = entity.TransferStatus(*in.Status)
	}
	if in.ReferenceNo != nil {
		t.ReferenceNo = *in.ReferenceNo
	}
	if in.TransferDate != nil {
		t.TransferDate = *in.TransferDate
	}
	if in.CostForTransfer != nil {
		t.CostForTransfer = toNullDecimal(in.CostForTransfer)
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
}

func transferRef(t *entity.InternalTransfer, userID string, at time.Time) MovementRef {
	return MovementRef{
		StoreID:      t.StoreID,
		DocumentType: entity.DocumentTransfer,
		DocumentID:   t.ID,
		CreatedBy:    userID,
		At:           at,
	}
}
