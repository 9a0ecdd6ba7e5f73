package ports

// MutationObserver recibe el resultado de cada operación de los protocolos de stock
// (implementado por pkg/metrics).
type MutationObserver interface {
	ObserveMutation(protocol string, err error)
	ObserveImportItem(err error)
}

// NopObserver descarta las observaciones.
type NopObserver struct{}

func (NopObserver) ObserveMutation(string, error) {}
func (NopObserver) ObserveImportItem(error)       {}
