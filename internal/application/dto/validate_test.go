package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

func validTransfer() CreateTransferRequest {
	return CreateTransferRequest{
		FromWarehouseID: uuid.NewString(),
		ToWarehouseID:   uuid.NewString(),
		ProductID:       uuid.NewString(),
		Quantity:        5,
		TransferDate:    time.Now(),
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validTransfer()))
}

func TestValidate_CantidadCero(t *testing.T) {
	in := validTransfer()
	in.Quantity = 0

	err := Validate(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quantity")
}

func TestValidate_EstadoDesconocido(t *testing.T) {
	in := validTransfer()
	in.Status = "SHIPPED"

	err := Validate(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "status")
}

func TestValidate_FechaRequerida(t *testing.T) {
	in := validTransfer()
	in.TransferDate = time.Time{}

	err := Validate(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "transfer_date")
}

func TestValidate_LabelsDive(t *testing.T) {
	err := Validate(LabelsRequest{ProductIDs: []string{"no-es-uuid"}, Kind: LabelQR})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := PageRequest{Limit: 0, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = PageRequest{Limit: 1000}
	p.DefaultPage()
	assert.Equal(t, MaxLimit, p.Limit)
}
