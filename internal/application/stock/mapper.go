package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func toPage(p dto.PageRequest) repository.Page {
	p.DefaultPage()
	return repository.Page{Limit: p.Limit, Offset: p.Offset}
}

func toDateRange(q dto.DateRangeQuery) repository.DateRange {
	return repository.DateRange{From: q.From, To: q.To}
}

func pageResponse(p repository.Page, total int) dto.PageResponse {
	return dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total}
}

// ToStockRecordResponse mapea un nivel de stock a su DTO.
func ToStockRecordResponse(r *entity.StockRecord) dto.StockRecordResponse {
	return dto.StockRecordResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		ProductName:      r.ProductName,
		ProductSKU:       r.ProductSKU,
		WarehouseID:      r.WarehouseID,
		WarehouseName:    r.WarehouseName,
		Quantity:         r.Quantity,
		AvgPurchasePrice: nullableDecimal(r.AvgPurchasePrice),
		UpdatedAt:        r.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		WarehouseID:   m.WarehouseID,
		WarehouseName: m.WarehouseName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		UnitCost:      nullableDecimal(m.UnitCost),
		BalanceAfter:  m.BalanceAfter,
		DocumentType:  m.DocumentType,
		DocumentID:    m.DocumentID,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ToTransferResponse mapea un traslado a su DTO.
func ToTransferResponse(t *entity.InternalTransfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:                t.ID,
		StoreID:           t.StoreID,
		FromWarehouseID:   t.FromWarehouseID,
		FromWarehouseName: t.FromWarehouseName,
		ToWarehouseID:     t.ToWarehouseID,
		ToWarehouseName:   t.ToWarehouseName,
		ProductID:         t.ProductID,
		ProductName:       t.ProductName,
		Quantity:          t.Quantity,
		Status:            string(t.Status),
		ReferenceNo:       t.ReferenceNo,
		TransferDate:      t.TransferDate,
		CostForTransfer:   nullableDecimal(t.CostForTransfer),
		Notes:             t.Notes,
		CreatedBy:         t.CreatedBy,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToAdjustmentResponse mapea un ajuste a su DTO.
func ToAdjustmentResponse(a *entity.StockAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:             a.ID,
		StoreID:        a.StoreID,
		WarehouseID:    a.WarehouseID,
		WarehouseName:  a.WarehouseName,
		ProductID:      a.ProductID,
		ProductName:    a.ProductName,
		Quantity:       a.Quantity,
		Type:           string(a.Type),
		AdjustmentDate: a.AdjustmentDate,
		ReferenceNo:    a.ReferenceNo,
		Notes:          a.Notes,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToStockLotResponse mapea un lote a su DTO, con el costo total calculado.
func ToStockLotResponse(l *entity.StockLot) *dto.StockLotResponse {
	return &dto.StockLotResponse{
		ID:             l.ID,
		StoreID:        l.StoreID,
		WarehouseID:    l.WarehouseID,
		WarehouseName:  l.WarehouseName,
		SupplierID:     l.SupplierID,
		SupplierName:   l.SupplierName,
		ProductID:      l.ProductID,
		ProductName:    l.ProductName,
		LotReferenceNo: l.LotReferenceNo,
		Quantity:       l.Quantity,
		PurchasePrice:  l.PurchasePrice,
		PurchaseDate:   l.PurchaseDate,
		Status:         string(l.Status),
		OtherCharges:   l.OtherCharges,
		Discount:       l.Discount,
		TotalCost:      l.TotalCost(),
		Notes:          l.Notes,
		CreatedBy:      l.CreatedBy,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
