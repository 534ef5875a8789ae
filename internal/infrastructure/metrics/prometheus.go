// Package metrics adapta ports.MetricsRecorder a Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stockpro/internal/application/ports"
)

const namespace = "stockpro"

var _ ports.MetricsRecorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder publica las métricas en un registry propio (no el global),
// así los tests pueden crear varias instancias sin colisiones.
type PrometheusRecorder struct {
	registry        *prometheus.Registry
	movements       *prometheus.CounterVec
	movedQuantity   *prometheus.CounterVec
	logins          *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	reportsExported *prometheus.CounterVec
}

// NewPrometheusRecorder registra los colectores de la aplicación y los del runtime de Go.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_total",
			Help:      "Movimientos de stock registrados, por tipo.",
		}, []string{"type"}),
		movedQuantity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moved_quantity_total",
			Help:      "Unidades movidas, por tipo.",
		}, []string{"type"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Intentos de login, por resultado.",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sesiones autenticadas abiertas.",
		}),
		reportsExported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_exported_total",
			Help:      "Reportes exportados, por formato.",
		}, []string{"format"}),
	}
	r.registry.MustRegister(
		r.movements,
		r.movedQuantity,
		r.logins,
		r.activeSessions,
		r.reportsExported,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *PrometheusRecorder) MovementRecorded(movementType string, quantity int) {
	r.movements.WithLabelValues(movementType).Inc()
	if quantity > 0 {
		r.movedQuantity.WithLabelValues(movementType).Add(float64(quantity))
	}
}

func (r *PrometheusRecorder) LoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	r.logins.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) ActiveSessions(n int) {
	r.activeSessions.Set(float64(n))
}

func (r *PrometheusRecorder) ReportExported(format string) {
	r.reportsExported.WithLabelValues(format).Inc()
}

// Registry expone el registry (tests y colectores adicionales).
func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

// Handler sirve el formato de exposición de Prometheus.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
