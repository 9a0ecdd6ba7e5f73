package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func TestTransferActivates(t *testing.T) {
	assert.True(t, TransferActivates("", entity.TransferCompleted), "crear ya completado activa")
	assert.True(t, TransferActivates(entity.TransferPending, entity.TransferCompleted))
	assert.True(t, TransferActivates(entity.TransferCancelled, entity.TransferCompleted))
	assert.False(t, TransferActivates(entity.TransferCompleted, entity.TransferCompleted), "re-guardar no reactiva")
	assert.False(t, TransferActivates("", entity.TransferPending))
	assert.False(t, TransferActivates(entity.TransferPending, entity.TransferCancelled))
}

func TestLotActivates(t *testing.T) {
	assert.True(t, LotActivates("", entity.StockLotDelivered))
	assert.True(t, LotActivates(entity.StockLotPending, entity.StockLotDelivered))
	assert.False(t, LotActivates(entity.StockLotDelivered, entity.StockLotDelivered))
	assert.False(t, LotActivates(entity.StockLotPending, entity.StockLotPending))
}

func TestLeavesGate(t *testing.T) {
	assert.True(t, LeavesGate(entity.TransferCompleted, entity.TransferPending, entity.TransferCompleted))
	assert.False(t, LeavesGate(entity.TransferCompleted, entity.TransferCompleted, entity.TransferCompleted))
	assert.False(t, LeavesGate(entity.StockLotPending, entity.StockLotCancelled, entity.StockLotDelivered))
}
