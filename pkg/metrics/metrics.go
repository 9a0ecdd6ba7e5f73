// Package metrics expone los contadores Prometheus del servicio.
//
// Las métricas se registran en el Registerer recibido, de modo que los tests
// pueden usar un registro aislado (prometheus.NewRegistry) sin colisiones.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una mutación de stock o de un ítem de importación.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics agrupa los colectores del servicio.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StockMutationsTotal *prometheus.CounterVec
	StockImportItems    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registra los colectores en reg. Si reg también es Gatherer (p. ej. *prometheus.Registry)
// Handler expone ese mismo registro.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP (segundos)",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route"},
		),
		StockMutationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_mutations_total",
				Help: "Operaciones de los protocolos de stock por resultado",
			},
			[]string{"protocol", "outcome"},
		),
		StockImportItems: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_import_items_total",
				Help: "Ítems procesados por la importación de lotes",
			},
			[]string{"outcome"},
		),
		gatherer: prometheus.DefaultGatherer,
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// ObserveMutation cuenta una operación de protocolo de stock.
func (m *Metrics) ObserveMutation(protocol string, err error) {
	if m == nil {
		return
	}
	m.StockMutationsTotal.WithLabelValues(protocol, outcome(err)).Inc()
}

// ObserveImportItem cuenta un ítem de importación de lotes.
func (m *Metrics) ObserveImportItem(err error) {
	if m == nil {
		return
	}
	m.StockImportItems.WithLabelValues(outcome(err)).Inc()
}

// Handler devuelve el handler net/http de exposición (/metrics).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
