package stock

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// IsActivatingTransition es verdadero solo cuando el estado entra en gate desde otro estado.
// La creación se modela como la transición desde el estado vacío.
func IsActivatingTransition[S ~string](old, next, gate S) bool {
	return next == gate && old != gate
}

// LeavesGate es verdadero cuando un documento ya efectivo intenta salir del estado gate.
func LeavesGate[S ~string](old, next, gate S) bool {
	return old == gate && next != gate
}

// TransferActivates indica si el traslado debe mover stock con este cambio de estado.
func TransferActivates(old, next entity.TransferStatus) bool {
	return IsActivatingTransition(old, next, entity.TransferCompleted)
}

// LotActivates indica si el lote debe entrar al stock con este cambio de estado.
func LotActivates(old, next entity.StockLotStatus) bool {
	return IsActivatingTransition(old, next, entity.StockLotDelivered)
}
