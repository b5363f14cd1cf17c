package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores de la aplicación, con su propio registry.
type Metrics struct {
	registry *prometheus.Registry

	// MovementsAccepted movimientos aceptados, etiquetados por kind (entry|exit).
	MovementsAccepted *prometheus.CounterVec
	// MovementsRejected movimientos rechazados, etiquetados por motivo
	// (validation|not_found|insufficient_stock).
	MovementsRejected *prometheus.CounterVec
}

// New crea el registry con los contadores de la aplicación y los colectores de runtime.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	accepted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stockledger_movements_accepted_total",
		Help: "Movimientos de inventario aceptados.",
	}, []string{"kind"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stockledger_movements_rejected_total",
		Help: "Movimientos de inventario rechazados por la capa de invariantes.",
	}, []string{"reason"})
	registry.MustRegister(accepted, rejected)

	return &Metrics{
		registry:          registry,
		MovementsAccepted: accepted,
		MovementsRejected: rejected,
	}
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
